// Package ledger_stats - периодическая задача, которая выгружает размеры
// леджера в Prometheus. Только читает, ничего не меняет.
package ledger_stats

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

var statuses = []entities.OrderStatusType{
	entities.OrderAwaitingPayment,
	entities.OrderPaidInProgress,
	entities.OrderPaidDone,
}

type LedgerStats struct {
	log      handlerLogger
	users    UserCounter
	orders   OrderLister
	interval time.Duration
}

func New(log handlerLogger, users UserCounter, orders OrderLister, interval time.Duration) *LedgerStats {
	return &LedgerStats{
		log:      log,
		users:    users,
		orders:   orders,
		interval: interval,
	}
}

func (l *LedgerStats) TTL() time.Duration {
	return l.interval
}

func (l *LedgerStats) Do(ctx context.Context) error {
	if l.interval > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.interval)
		defer cancel()
	}

	usersCount, err := l.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	orders, err := l.orders.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	byStatus := make(map[entities.OrderStatusType]int, len(statuses))
	var outstanding uint64
	for _, o := range orders {
		byStatus[o.Status]++
		if o.Status == entities.OrderAwaitingPayment {
			outstanding += o.AmountToPay
		}
	}

	UsersTotal.Set(float64(usersCount))
	for _, status := range statuses {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(byStatus[status]))
	}
	OutstandingAmount.Set(float64(outstanding))

	l.log.With(
		logger.NewField("users", usersCount),
		logger.NewField("orders", len(orders)),
	).Info("ledger stats collected")

	return nil
}

func (l *LedgerStats) Info() string {
	return "ledger stats"
}
