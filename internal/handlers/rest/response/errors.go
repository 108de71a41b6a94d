package response

import (
	"errors"
	"fmt"
	"net/http"

	"laundry/internal/generated/dto"
	"laundry/internal/service"
)

// StatusTooEarly - стирка ещё идёт, повторите запрос позже.
const StatusTooEarly = http.StatusTooEarly

// Classify переводит ошибку бизнес-слоя в HTTP-статус и тело ответа.
// Специализированные ошибки проверяются раньше базовых.
func Classify(err error) (int, dto.Error) {
	var notDone *service.NotDoneError
	switch {
	case errors.As(err, &notDone):
		return StatusTooEarly, dto.Error{
			Kind:    dto.ErrorKindLaundryNotDone,
			Message: fmt.Sprintf("Laundry not done. Time left: %dh %dm", notDone.Hours, notDone.Minutes),
			Hours:   &notDone.Hours,
			Minutes: &notDone.Minutes,
		}

	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, notFound("User not found")
	case errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound, notFound("Laundry not found")
	case errors.Is(err, service.ErrNoUsers):
		return http.StatusNotFound, notFound("No users found")
	case errors.Is(err, service.ErrNoOrders):
		return http.StatusNotFound, notFound("No laundries found")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, notFound("Not found")

	case errors.Is(err, service.ErrInvalidPackage):
		return http.StatusBadRequest, invalidInput("Invalid package type")
	case errors.Is(err, service.ErrOwnerMismatch):
		return http.StatusBadRequest, invalidInput("Invalid user")
	case errors.Is(err, service.ErrNoFinishTime):
		return http.StatusBadRequest, invalidInput("Laundry has no finish time")
	case errors.Is(err, service.ErrInvalidWeight):
		return http.StatusBadRequest, invalidInput("Invalid weight")
	case errors.Is(err, service.ErrRecordTooLarge):
		return http.StatusBadRequest, invalidInput("Record too large")
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, invalidInput("Invalid input")

	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusPaymentRequired, dto.Error{
			Kind:    dto.ErrorKindInsufficientBalance,
			Message: "Insufficient balance",
		}
	case errors.Is(err, service.ErrAlreadyPaid):
		return http.StatusConflict, dto.Error{
			Kind:    dto.ErrorKindAlreadyPaid,
			Message: "Laundry already paid",
		}
	case errors.Is(err, service.ErrLaundryAlreadyDone):
		return http.StatusConflict, dto.Error{
			Kind:    dto.ErrorKindLaundryAlreadyDone,
			Message: "Laundry is already marked as done",
		}

	default:
		return http.StatusInternalServerError, dto.Error{
			Kind:    dto.ErrorKindInternal,
			Message: "Internal server error",
		}
	}
}

func notFound(message string) dto.Error {
	return dto.Error{Kind: dto.ErrorKindNotFound, Message: message}
}

func invalidInput(message string) dto.Error {
	return dto.Error{Kind: dto.ErrorKindInvalidInput, Message: message}
}
