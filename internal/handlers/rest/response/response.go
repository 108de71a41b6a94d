// Package response - общий для REST-ручек вывод: JSON-тело, DTO и ошибки
// бизнес-слоя в виде статуса и dto.Error.
package response

import (
	"encoding/json"
	"net/http"

	"laundry/internal/generated/dto"
	"laundry/pkg/logger"
)

func JSON(w http.ResponseWriter, log logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error пишет типизированную ошибку. Непредвиденные ошибки логируются
// и наружу уходят как 500 без подробностей.
func Error(w http.ResponseWriter, log logger.Logger, err error) {
	status, body := Classify(err)
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
	}
	JSON(w, log, status, body)
}

func BadRequest(w http.ResponseWriter, log logger.Logger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.Error{
		Kind:    dto.ErrorKindInvalidInput,
		Message: message,
	})
}
