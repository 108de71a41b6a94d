package order

import (
	"context"
	"fmt"

	"laundry/internal/entities"
	"laundry/internal/repository/kv"
	"laundry/internal/service"
)

const table = "orders"

type Repository struct {
	orders *kv.Map[entities.Order]
}

func New(querier kv.Querier) *Repository {
	return &Repository{
		orders: kv.New[entities.Order](querier, table, Codec{}),
	}
}

func (r *Repository) GetByID(ctx context.Context, id uint64) (*entities.Order, error) {
	o, ok, err := r.orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}
	if !ok {
		return nil, service.ErrOrderNotFound
	}
	return &o, nil
}

// GetAll возвращает заказы по возрастанию id. Пустой результат - не ошибка.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	entries, err := r.orders.Iterate(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get all error: %w", err)
	}

	orders := make([]entities.Order, 0, len(entries))
	for _, e := range entries {
		orders = append(orders, e.Value)
	}
	return orders, nil
}

func (r *Repository) Save(ctx context.Context, o entities.Order) error {
	if err := r.orders.Insert(ctx, o.ID, o); err != nil {
		return fmt.Errorf("unexpected order repository save error: %w", err)
	}
	return nil
}
