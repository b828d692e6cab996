package data

import (
	"testing"

	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"

	"github.com/stretchr/testify/assert"
)

func TestFloatOr(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{name: "decimal", in: "7.5", want: 7.5},
		{name: "integer", in: "1200", want: 1200},
		{name: "absent", in: nil, want: 42},
		{name: "empty", in: "", want: 42},
		{name: "text", in: "soon", want: 42},
		{name: "nan", in: "nan", want: 42},
		{name: "infinity", in: "inf", want: 42},
		{name: "negative infinity", in: "-Inf", want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, floatOr(tt.in, 42))
		})
	}
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "Dune", stringOr("Dune", "(untitled)"))
	assert.Equal(t, "(untitled)", stringOr("", "(untitled)"))
	assert.Equal(t, "(untitled)", stringOr(nil, "(untitled)"))
}

func TestParseGenres(t *testing.T) {
	genres := parseGenres(`[{"id":878,"name":"Science Fiction"}]`)
	assert.Equal(t, []biz.Genre{{ID: 878, Name: "Science Fiction"}}, genres)

	assert.Nil(t, parseGenres(`{not json`))
	assert.Nil(t, parseGenres(""))
	assert.Nil(t, parseGenres(nil))
}
