// Package laundry ведёт заказ по состояниям AwaitingPayment -> PaidInProgress -> PaidDone.
// Каждый переход меняет и заказ, и его владельца, поэтому обе записи
// сохраняются в одной транзакции.
package laundry

import (
	"context"
	"fmt"

	"laundry/internal/entities"
	"laundry/internal/service"
)

type Laundry struct {
	userService     UserService
	orderService    OrderService
	deadlineFactory DeadlineFactory
	clock           Clock
	txManager       TxManager
}

func New(
	userService UserService,
	orderService OrderService,
	deadlineFactory DeadlineFactory,
	clock Clock,
	txManager TxManager,
) *Laundry {
	return &Laundry{
		userService:     userService,
		orderService:    orderService,
		deadlineFactory: deadlineFactory,
		clock:           clock,
		txManager:       txManager,
	}
}

// Pay списывает стоимость заказа с баланса пользователя и запускает стирку.
// Все проверки выполняются до первой записи.
func (s *Laundry) Pay(ctx context.Context, userID, orderID uint64) (*entities.Order, error) {
	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.userService.GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("get payer: %w", err)
		}

		order, err = s.orderService.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order to pay: %w", err)
		}

		if user.Balance < order.AmountToPay {
			return service.ErrInsufficientBalance
		}
		if order.UserID != userID {
			return service.ErrOwnerMismatch
		}
		if order.Status.IsPaid() {
			return service.ErrAlreadyPaid
		}

		now := s.clock.Now()

		user.Balance -= order.AmountToPay
		user.PendingOrders, user.ActiveOrders = entities.MoveOrder(user.PendingOrders, user.ActiveOrders, order.ID)
		if err := s.userService.SaveUser(ctx, *user); err != nil {
			return fmt.Errorf("save payer: %w", err)
		}

		finishedAt := s.deadlineFactory.CalculateDeadline(order.Package, now)
		order.Status = entities.OrderPaidInProgress
		order.UpdatedAt = &now
		order.FinishedAt = &finishedAt
		if err := s.orderService.SaveOrder(ctx, *order); err != nil {
			return fmt.Errorf("save paid order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrdersPaidTotal.WithLabelValues(order.Package.String()).Inc()
	RevenueTotal.Add(float64(order.AmountToPay))
	return order, nil
}

// PollCompletion переводит заказ в PaidDone, если дедлайн уже прошёл.
// Иначе возвращает *service.NotDoneError с оставшимся временем.
func (s *Laundry) PollCompletion(ctx context.Context, orderID uint64) (*entities.Order, error) {
	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderService.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order to complete: %w", err)
		}

		if order.Status == entities.OrderPaidDone {
			return service.ErrLaundryAlreadyDone
		}
		if order.FinishedAt == nil {
			return service.ErrNoFinishTime
		}

		now := s.clock.Now()
		if !now.After(*order.FinishedAt) {
			return service.NewNotDoneError(order.FinishedAt.Sub(now))
		}

		order.Status = entities.OrderPaidDone
		order.UpdatedAt = &now
		if err := s.orderService.SaveOrder(ctx, *order); err != nil {
			return fmt.Errorf("save completed order: %w", err)
		}

		user, err := s.userService.GetUser(ctx, order.UserID)
		if err != nil {
			return fmt.Errorf("get order owner: %w", err)
		}

		user.ActiveOrders, user.CompletedOrders = entities.MoveOrder(user.ActiveOrders, user.CompletedOrders, order.ID)
		if err := s.userService.SaveUser(ctx, *user); err != nil {
			return fmt.Errorf("save order owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrdersCompletedTotal.WithLabelValues(order.Package.String()).Inc()
	return order, nil
}
