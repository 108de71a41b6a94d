package ledger_stats

import (
	"context"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_stats_test

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type OrderLister interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
