// Package middleware contains middleware functions for the API
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/oklog/ulid/v2"

	apiError "github.com/matt-dz/recipematch/internal/api/error"
	"github.com/matt-dz/recipematch/internal/api/requestid"
	"github.com/matt-dz/recipematch/internal/config"
	"github.com/matt-dz/recipematch/internal/env"
	"github.com/matt-dz/recipematch/internal/log"
	"github.com/matt-dz/recipematch/internal/metrics"
)

const (
	corsMaxAge      = 86400
	rateLimitWindow = time.Minute
	unmatchedRoute  = "unmatched"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// Cors allows every origin in development and only the host origin in
// production.
func Cors(conf config.Config) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if conf.Env == config.EnvProd {
		origins = []string{conf.HostOrigin}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         corsMaxAge,
	})
}

// RateLimit limits each client IP to requests per minute. A limit of zero
// or less disables it.
func RateLimit(requests int) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		requests,
		rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)
			_ = apiError.EncodeError(w, apiError.TooManyRequests, "too many requests", requestID)
		}),
	)
}

// Instrument records request counts and latencies labelled by route pattern.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordAPIRequest(r.Method, routePattern(r), status, time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

// NotFound and MethodNotAllowed replace chi's plain text responses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)
	_ = apiError.EncodeError(w, apiError.NotFound, "resource not found", requestID)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)
	_ = apiError.EncodeError(w, apiError.MethodNotAllowed, "method not allowed", requestID)
}
