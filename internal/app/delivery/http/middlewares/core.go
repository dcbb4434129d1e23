package middlewares

import (
	"context"
	"net/http"
	"time"

	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// responseRecorder captures the status code and body size a handler writes
// so the logging middleware can report them after the fact.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	bodyBytes  int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(p []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(p)
	rec.bodyBytes += n
	return n, err
}

// RequestIDMiddleware guarantees every request carries an identifier. A
// client-supplied X-Request-ID is kept, otherwise one is generated, and the
// chosen identifier is echoed on the response for correlation.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		clientProvided := requestID != ""
		if !clientProvided {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, clientProvided)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestBodyLimit caps how much body a handler will read, protecting the
// upload endpoint from unbounded payloads.
func (m *Middlewares) RequestBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			clientProvided, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)

			base := []zap.Field{
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Bool("is_client_request_id", clientProvided),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			}
			if r.URL.RawQuery != "" {
				base = append(base, zap.String(constvars.LoggingQueryKey, r.URL.RawQuery))
			}
			logger.Info("API request started", base...)

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			completed := append(base,
				zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
				zap.Int(constvars.LoggingResponseLengthKey, rec.bodyBytes),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < http.StatusBadRequest),
			)
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				completed = append(completed, zap.String(constvars.LoggingRouteKey, routeCtx.RoutePattern()))
			}
			logger.Info("API request completed", completed...)
		})
	}
}
