package order_completion_post

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"laundry/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP проверяет дедлайн заказа. Пока стирка идёт, отвечает 425
// с оставшимся временем; клиент сам решает, когда спросить снова.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.BadRequest(w, h.log, "Invalid laundry id")
		return
	}

	order, err := h.service.PollCompletion(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToOrderDTO(order))
}
