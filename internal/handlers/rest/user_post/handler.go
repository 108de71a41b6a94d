package user_post

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
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		response.BadRequest(w, h.log, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), userCreateDTO.Name)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.ToUserDTO(user))
}
