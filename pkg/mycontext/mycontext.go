package mycontext

import (
	"context"

	"github.com/labstack/echo/v4"
)

const requestIDKey contextKey = "request_id"

type contextKey string

// NewEchoContextAdapter returns the request context tagged with the request id.
func NewEchoContextAdapter(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		ctx = WithRequestID(ctx, id)
	}

	return ctx
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the id of the HTTP request that started ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}
