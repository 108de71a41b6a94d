package rate_limiter

import (
	"net/http"
	"strconv"

	"laundry/internal/generated/dto"
	"laundry/internal/handlers/rest/response"
	"laundry/internal/pkg/middlewares/metrics"
	"laundry/internal/pkg/middlewares/request_id"
	"laundry/pkg/logger"
)

// Middleware отклоняет запросы сверх лимита с 429. qps уходит клиенту
// в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			reqLog := log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			reqLog.Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			response.JSON(w, reqLog, http.StatusTooManyRequests, dto.Error{
				Kind:    dto.ErrorKindRateLimited,
				Message: "Rate limit exceeded. Try again later.",
			})
		})
	}
}
