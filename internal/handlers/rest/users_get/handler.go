package users_get

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
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	usersDTO := make([]dto.User, 0, len(users))
	for i := range users {
		usersDTO = append(usersDTO, response.ToUserDTO(&users[i]))
	}

	response.JSON(w, h.log, http.StatusOK, usersDTO)
}
