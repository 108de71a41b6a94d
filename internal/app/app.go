// Package app собирает зависимости леджера: репозитории, сервисы и фоновые
// задачи. Граф описан в wire.go, wire_gen.go генерируется командой wire.
package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"laundry/internal/handlers/rest/order_completion_post"
	"laundry/internal/handlers/rest/order_get"
	"laundry/internal/handlers/rest/order_pay_post"
	"laundry/internal/handlers/rest/order_post"
	"laundry/internal/handlers/rest/orders_get"
	"laundry/internal/handlers/rest/user_get"
	"laundry/internal/handlers/rest/user_post"
	"laundry/internal/handlers/rest/users_get"
	"laundry/internal/handlers/tasks/ledger_stats"
	"laundry/internal/pkg/config"
	"laundry/internal/repository/idgen"
	orderRepo "laundry/internal/repository/order"
	userRepo "laundry/internal/repository/user"
	laundryService "laundry/internal/service/laundry"
	orderService "laundry/internal/service/order"
	userService "laundry/internal/service/user"
	"laundry/pkg/background"
	"laundry/pkg/logger"
	"laundry/pkg/querier"
	"laundry/pkg/tx"
)

type (
	LedgerStatsInterval time.Duration
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceOrder      ServiceOrder
	ServiceLaundry    ServiceLaundry
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	user_post.Service
	user_get.Service
	users_get.Service
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
}

type ServiceLaundry interface {
	order_pay_post.Service
	order_completion_post.Service
}

type KafkaWorkerApp struct {
	LaundryService *laundryService.Laundry
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideIDGenerator(querier *querier.Querier) *idgen.Generator {
	return idgen.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceUser(
	repository userService.Repository,
	idGenerator userService.IDGenerator,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, idGenerator, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	users orderService.UserService,
	idGenerator orderService.IDGenerator,
	rateFactory orderService.RateFactory,
	clock orderService.Clock,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, users, idGenerator, rateFactory, clock, txManager)
}

func provideServiceLaundry(
	users laundryService.UserService,
	orders laundryService.OrderService,
	deadlineFactory laundryService.DeadlineFactory,
	clock laundryService.Clock,
	txManager laundryService.TxManager,
) *laundryService.Laundry {
	return laundryService.New(users, orders, deadlineFactory, clock, txManager)
}

func provideLedgerStatsInterval(cfg *config.Config) LedgerStatsInterval {
	return LedgerStatsInterval(cfg.Tasks.LedgerStatsInterval)
}

func provideLedgerStatsTask(
	log logger.Logger,
	users ledger_stats.UserCounter,
	orders ledger_stats.OrderLister,
	interval LedgerStatsInterval,
) *ledger_stats.LedgerStats {
	return ledger_stats.New(log, users, orders, time.Duration(interval))
}

func provideTaskList(
	ledgerStatsTask *ledger_stats.LedgerStats,
) []background.Task {
	return []background.Task{
		ledgerStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks...)
}
