package orders_get

import (
	"net/http"

	"laundry/internal/generated/dto"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	ordersDTO := make([]dto.Order, 0, len(orders))
	for i := range orders {
		ordersDTO = append(ordersDTO, response.ToOrderDTO(&orders[i]))
	}

	response.JSON(w, h.log, http.StatusOK, ordersDTO)
}
