package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/lunisolar-api/internal/platform/logger"
)

// RegionHeader is set by the edge proxy to the caller's country code.
const RegionHeader = "CF-IPCountry"

const unknownRegion = "unknown region"

// RequestLogger logs one line per request after it completes, with the
// method, path, status, response size, duration, remote address and the
// caller's region. It uses the context logger installed by the trace
// middleware when present.
func RequestLogger(fallback *slog.Logger) func(http.Handler) http.Handler {
	if fallback == nil {
		fallback = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			region := r.Header.Get(RegionHeader)
			if region == "" {
				region = unknownRegion
			}

			log := logger.FromContextOrDefault(r.Context(), fallback)
			log.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("region", region),
				slog.String("request_id", chimiddleware.GetReqID(r.Context())))
		})
	}
}
