//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_completion_post_test
package order_completion_post

import (
	"context"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PollCompletion(ctx context.Context, orderID uint64) (*entities.Order, error)
}
