package payment_requested

import (
	"context"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_requested_test

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Pay(ctx context.Context, userID, orderID uint64) (*entities.Order, error)
}
