package graceful_shutdown

import (
	"context"
	"net/http"

	"laundry/internal/generated/dto"
	"laundry/internal/handlers/rest/response"
)

// Middleware перестаёт пускать новые запросы к леджеру, как только
// ongoingCtx отменён и сервер помечен как останавливающийся.
func Middleware(log handlerLogger, isShuttingDown ShutdownState, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					response.JSON(w, log, http.StatusServiceUnavailable, dto.Error{
						Kind:    dto.ErrorKindUnavailable,
						Message: "Service is shutting down",
					})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
