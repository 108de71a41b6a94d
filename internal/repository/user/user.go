package user

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/entities"
	"laundry/internal/repository/kv"
	"laundry/internal/service"
)

const table = "users"

type Repository struct {
	users *kv.Map[entities.User]
}

func New(querier kv.Querier) *Repository {
	return &Repository{
		users: kv.New[entities.User](querier, table, Codec{}),
	}
}

func (r *Repository) GetByID(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return &u, nil
}

// GetAll возвращает пользователей по возрастанию id. Пустой результат - не ошибка.
func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	entries, err := r.users.Iterate(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get all error: %w", err)
	}

	users := make([]entities.User, 0, len(entries))
	for _, e := range entries {
		users = append(users, e.Value)
	}
	return users, nil
}

func (r *Repository) Save(ctx context.Context, u entities.User) error {
	if err := r.users.Insert(ctx, u.ID, u); err != nil {
		if errors.Is(err, kv.ErrValueTooLarge) {
			return fmt.Errorf("user %d: %w", u.ID, service.ErrRecordTooLarge)
		}
		return fmt.Errorf("unexpected user repository save error: %w", err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	n, err := r.users.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository count error: %w", err)
	}
	return n, nil
}
