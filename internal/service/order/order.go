package order

import (
	"context"
	"fmt"
	"math/bits"

	"laundry/internal/entities"
	"laundry/internal/service"
)

type Order struct {
	repository  Repository
	userService UserService
	idGenerator IDGenerator
	rateFactory RateFactory
	clock       Clock
	txManager   TxManager
}

func New(
	repository Repository,
	userService UserService,
	idGenerator IDGenerator,
	rateFactory RateFactory,
	clock Clock,
	txManager TxManager,
) *Order {
	return &Order{
		repository:  repository,
		userService: userService,
		idGenerator: idGenerator,
		rateFactory: rateFactory,
		clock:       clock,
		txManager:   txManager,
	}
}

// Price - вес, умноженный на тариф пакета. Переполнение uint64 считается невалидным весом.
func (s *Order) Price(weight uint64, pkg entities.OrderPackage) (uint64, error) {
	rate, err := s.rateFactory.GetRate(pkg)
	if err != nil {
		return 0, err
	}

	hi, amount := bits.Mul64(weight, rate)
	if hi != 0 {
		return 0, service.ErrInvalidWeight
	}
	return amount, nil
}

// CreateOrder сохраняет заказ в статусе AwaitingPayment и кладёт его id в pending_orders
// владельца. Если владельца нет, откатываются и заказ, и выданный id.
func (s *Order) CreateOrder(
	ctx context.Context,
	weight uint64,
	userID uint64,
	pkg entities.OrderPackage,
) (*entities.Order, error) {
	amount, err := s.Price(weight, pkg)
	if err != nil {
		return nil, err
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.idGenerator.NextID(ctx)
		if err != nil {
			return fmt.Errorf("next order id: %w", err)
		}

		order = entities.Order{
			ID:          id,
			Weight:      weight,
			Package:     pkg,
			AmountToPay: amount,
			Status:      entities.OrderAwaitingPayment,
			UserID:      userID,
			CreatedAt:   s.clock.Now(),
		}

		if err := s.repository.Save(ctx, order); err != nil {
			return fmt.Errorf("save order: %w", err)
		}

		user, err := s.userService.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("get order owner: %w", err)
		}

		user.PendingOrders = entities.AppendOrder(user.PendingOrders, order.ID)
		if err := s.userService.SaveUser(ctx, *user); err != nil {
			return fmt.Errorf("save order owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrdersCreatedTotal.WithLabelValues(pkg.String()).Inc()
	return &order, nil
}

func (s *Order) GetOrder(ctx context.Context, id uint64) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

// ListOrders возвращает ErrNoOrders вместо пустого списка.
func (s *Order) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, service.ErrNoOrders
	}

	return orders, nil
}

func (s *Order) SaveOrder(ctx context.Context, order entities.Order) error {
	if err := s.repository.Save(ctx, order); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}
