package middleware

import (
	"log/slog"
	"net/http"

	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/api/shared"
	"github.com/JonathanMiroshnik/HUJIHackathon2025/internal/platform/logger"
)

// NewTraceMiddleware returns a middleware that gives every request a trace ID
// and a logger scoped to it. Handlers retrieve the logger with
// logger.FromContext. The trace ID is echoed in the X-Trace-ID header.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
