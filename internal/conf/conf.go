package conf

import (
	"encoding/json"
	"time"
)

// Bootstrap is the top-level configuration scanned from configs/config.yaml.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
}

// Server holds transport configuration.
type Server struct {
	Http *HTTP `json:"http"`
}

// HTTP holds the kratos HTTP server settings.
type HTTP struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

// Data holds store connection configuration.
type Data struct {
	Redis *Redis `json:"redis"`
}

// Redis holds the connection parameters for the movie store. Username and
// password normally arrive through ${REDIS_USERNAME}/${REDIS_PASSWORD}
// placeholders resolved from the environment.
type Redis struct {
	Addr         string   `json:"addr"`
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	DialTimeout  Duration `json:"dial_timeout"`
	ReadTimeout  Duration `json:"read_timeout"`
	WriteTimeout Duration `json:"write_timeout"`
}

// Duration decodes either a Go duration string ("400ms") or an integer
// nanosecond count, so yaml stays human-readable.
type Duration time.Duration

// AsDuration returns the value as a time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
