package data

import (
	"context"
	"time"

	"github.com/squadronxfr/redis-tp-ipssi/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewCatalogRepo,
	NewStatsRepo,
)

// Data encapsulates the shared connection to the movie store. The client is
// created once, pools connections internally, and is safe to share across
// every repository and request.
type Data struct {
	rdb *redis.Client
	log *log.Helper
}

// NewData creates the Data instance with the store connection.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)

	rdb := redis.NewClient(&redis.Options{
		Addr:         c.Redis.Addr,
		Username:     c.Redis.Username,
		Password:     c.Redis.Password,
		DialTimeout:  c.Redis.DialTimeout.AsDuration(),
		ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
		WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
	})

	// Ping the store once at startup. The dashboard stays up when the store
	// is unreachable; individual queries surface the failure instead.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		l.Warnf("store unreachable at startup: %v", err)
	} else {
		l.Infof("store connected: %s", c.Redis.Addr)
	}

	data := &Data{
		rdb: rdb,
		log: l,
	}

	cleanup := func() {
		l.Info("closing data resources")
		if err := data.rdb.Close(); err != nil {
			l.Errorf("failed to close store connection: %v", err)
		}
	}

	return data, cleanup, nil
}
