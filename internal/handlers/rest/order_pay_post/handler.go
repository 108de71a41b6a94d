package order_pay_post

import (
	"encoding/json"
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
	var payDTO dto.OrderPay
	err := json.NewDecoder(r.Body).Decode(&payDTO)
	if err != nil {
		response.BadRequest(w, h.log, "Invalid request body")
		return
	}

	order, err := h.service.Pay(r.Context(), payDTO.UserID, payDTO.OrderID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ToOrderDTO(order))
}
