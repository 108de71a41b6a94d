//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"laundry/internal/handlers/tasks/ledger_stats"
	"laundry/internal/pkg/config"
	"laundry/internal/pkg/factory/laundry_deadline"
	"laundry/internal/pkg/factory/laundry_rate"

	"laundry/internal/repository/idgen"
	orderRepo "laundry/internal/repository/order"
	userRepo "laundry/internal/repository/user"
	laundryService "laundry/internal/service/laundry"
	orderService "laundry/internal/service/order"
	userService "laundry/internal/service/user"

	"laundry/pkg/clock"
	"laundry/pkg/logger"
	"laundry/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ledgerSet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideIDGenerator,
	clock.New,
	laundry_rate.New,
	laundry_deadline.New,

	provideUserRepository,
	provideOrderRepository,

	provideServiceUser,
	provideServiceOrder,
	provideServiceLaundry,

	wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
	wire.Bind(new(userService.IDGenerator), new(*idgen.Generator)),
	wire.Bind(new(userService.TxManager), new(*tx.Manager)),

	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.UserService), new(*userService.User)),
	wire.Bind(new(orderService.IDGenerator), new(*idgen.Generator)),
	wire.Bind(new(orderService.RateFactory), new(*laundry_rate.RateFactory)),
	wire.Bind(new(orderService.Clock), new(*clock.System)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

	wire.Bind(new(laundryService.UserService), new(*userService.User)),
	wire.Bind(new(laundryService.OrderService), new(*orderService.Order)),
	wire.Bind(new(laundryService.DeadlineFactory), new(*laundry_deadline.LaundryDeadlineFactory)),
	wire.Bind(new(laundryService.Clock), new(*clock.System)),
	wire.Bind(new(laundryService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		ledgerSet,
		provideLedgerStatsInterval,

		provideLedgerStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceLaundry), new(*laundryService.Laundry)),

		wire.Bind(new(ledger_stats.UserCounter), new(*userRepo.Repository)),
		wire.Bind(new(ledger_stats.OrderLister), new(*orderRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-requested)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		ledgerSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
