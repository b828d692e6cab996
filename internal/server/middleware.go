package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestID tags every request with an identifier, reusing one supplied by
// the client, and echoes it back on the response.
func RequestID() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return handler(ctx, req)
			}

			id := tr.RequestHeader().Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			tr.ReplyHeader().Set("X-Request-Id", id)
			ctx = context.WithValue(ctx, requestIDKey{}, id)

			return handler(ctx, req)
		}
	}
}

// RequestIDValuer exposes the request identifier to structured log lines.
func RequestIDValuer() log.Valuer {
	return func(ctx context.Context) interface{} {
		id, _ := ctx.Value(requestIDKey{}).(string)
		return id
	}
}
