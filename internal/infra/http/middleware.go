package http

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"feedback-app/internal/infra/metrics"
)

// Metrics записывает счётчик и длительность каждого запроса.
// Метка path берётся из шаблона маршрута chi, а не из сырого URL.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = r.URL.Path
		}
		metrics.ObserveRequest(r.Method, path, ww.Status(), start)
	})
}

// Recover перехватывает панику обработчика, считает её и отвечает 500.
func Recover(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					metrics.HTTPPanicsTotal.Inc()
					logger.Error().Interface("panic", rec).
						Str("method", r.Method).Str("path", r.URL.Path).
						Msg("паника при обработке запроса")
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
