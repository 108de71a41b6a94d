package order_post

import (
	"encoding/json"
	"net/http"

	"laundry/internal/entities"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		response.BadRequest(w, h.log, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(
		r.Context(),
		orderCreateDTO.Weight,
		orderCreateDTO.UserID,
		entities.OrderPackage(orderCreateDTO.Package),
	)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.ToOrderDTO(order))
}
