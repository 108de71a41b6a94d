//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"laundry/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Save(ctx context.Context, order entities.Order) error
}

type UserService interface {
	GetUser(ctx context.Context, id uint64) (*entities.User, error)
	SaveUser(ctx context.Context, user entities.User) error
}

type IDGenerator interface {
	NextID(ctx context.Context) (uint64, error)
}

type RateFactory interface {
	GetRate(pkg entities.OrderPackage) (uint64, error)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
