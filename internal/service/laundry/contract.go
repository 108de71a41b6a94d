//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=laundry_test
package laundry

import (
	"context"
	"time"

	"laundry/internal/entities"
)

type UserService interface {
	GetUser(ctx context.Context, id uint64) (*entities.User, error)
	SaveUser(ctx context.Context, user entities.User) error
}

type OrderService interface {
	GetOrder(ctx context.Context, id uint64) (*entities.Order, error)
	SaveOrder(ctx context.Context, order entities.Order) error
}

type DeadlineFactory interface {
	CalculateDeadline(pkg entities.OrderPackage, baseTime time.Time) time.Time
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
