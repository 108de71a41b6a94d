package ping_get

import (
	"context"
	"net/http"
	"time"

	"laundry/internal/generated/dto"
	"laundry/internal/handlers/rest/response"
	"laundry/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log handlerLogger
	db  Pinger
}

func New(log handlerLogger, db Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	message := "pong"
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("ledger storage ping failed")

		message = "ledger storage unavailable"
		status = http.StatusServiceUnavailable
	}

	response.JSON(w, h.log, status, dto.PingResponse{
		Message: &message,
	})
}
