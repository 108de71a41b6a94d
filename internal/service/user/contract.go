//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"laundry/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	Save(ctx context.Context, user entities.User) error
}

type IDGenerator interface {
	NextID(ctx context.Context) (uint64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
