package healthcheck_head

import (
	"net/http"
)

// ShutdownState сообщает, что сервер начал остановку и больше не принимает трафик.
type ShutdownState interface {
	Load() bool
}

type Handler struct {
	isShuttingDown ShutdownState
}

func New(isShuttingDown ShutdownState) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
