package logger

import (
	"context"
	"log/slog"
	"os"
)

const originService = "nagar-sahayata-api"

// ctxKey doubles as the attribute name written to the record.
type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	userIDKey    ctxKey = "user_id"
	ipKey        ctxKey = "ip"
	methodKey    ctxKey = "method"
	urlKey       ctxKey = "url"
)

var requestAttrs = []ctxKey{requestIDKey, userIDKey, ipKey, methodKey, urlKey}

// Handler adds the request attributes carried by the context to every record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	for _, key := range requestAttrs {
		if v, _ := ctx.Value(key).(string); v != "" {
			record.AddAttrs(slog.String(string(key), v))
		}
	}

	record.AddAttrs(slog.String("origin_service", originService))

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

func New(level slog.Level) *slog.Logger {
	return slog.New(&Handler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	})
}

// ParseLevel accepts slog level names in any case. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	var l slog.Level

	err := l.UnmarshalText([]byte(level))
	if err != nil {
		return slog.LevelInfo
	}

	return l
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, requestIDKey, reqID)
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func SetIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey, ip)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, methodKey, method)
}

func SetURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, urlKey, url)
}
