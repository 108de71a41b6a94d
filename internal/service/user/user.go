package user

import (
	"context"
	"fmt"

	"laundry/internal/entities"
	"laundry/internal/service"
)

type User struct {
	repository  Repository
	idGenerator IDGenerator
	txManager   TxManager
}

func New(repository Repository, idGenerator IDGenerator, txManager TxManager) *User {
	return &User{
		repository:  repository,
		idGenerator: idGenerator,
		txManager:   txManager,
	}
}

// CreateUser заводит пользователя со стартовым балансом и пустыми списками заказов.
func (s *User) CreateUser(ctx context.Context, name string) (*entities.User, error) {
	var user entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.idGenerator.NextID(ctx)
		if err != nil {
			return fmt.Errorf("next user id: %w", err)
		}

		user = entities.User{
			ID:      id,
			Name:    name,
			Balance: entities.StartingBalance,
		}

		if err := s.repository.Save(ctx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *User) GetUser(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// ListUsers возвращает ErrNoUsers вместо пустого списка.
func (s *User) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	if len(users) == 0 {
		return nil, service.ErrNoUsers
	}

	return users, nil
}

func (s *User) SaveUser(ctx context.Context, user entities.User) error {
	if err := s.repository.Save(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
