package cmd

import (
	"log/slog"
	"time"

	"ordermanager/internal/adapters/out/callbackreg"
	"ordermanager/internal/adapters/out/postgres/orderrecordrepo"
	"ordermanager/internal/adapters/out/rabbitmq"
	"ordermanager/internal/adapters/out/redisconfig"
	"ordermanager/internal/core/application/dispatch"
	"ordermanager/internal/core/application/usecases/commands"
	"ordermanager/internal/core/application/usecases/queries"
	"ordermanager/internal/core/ports"
	"ordermanager/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB    *gorm.DB
	store     *orderrecordrepo.GormOrderRecordStore
	menuSrc   *redisconfig.MenuSource
	bus       ports.EventBus
	callbacks *callbackreg.Registry
	logger    *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	busChannel rabbitmq.Channel,
	redisClient *redis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	bus, err := rabbitmq.NewEventBus(busChannel, config.EventExchange, config.EventSource)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:    gormDB,
		store:     orderrecordrepo.NewGormOrderRecordStore(gormDB),
		menuSrc:   redisconfig.NewMenuSource(redisClient, config.MenuKey),
		bus:       bus,
		callbacks: callbackreg.NewRegistry(),
		logger:    logger,
	}, nil
}

func (c *CompositionRoot) CreatePutOrderCommandHandler() commands.PutOrderCommandHandler {
	return commands.NewPutOrderCommandHandler(c.store, c.menuSrc, c.callbacks)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.store, c.bus)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.store, c.bus, c.callbacks)
}

func (c *CompositionRoot) CreateDispatcher() dispatch.Dispatcher {
	return dispatch.NewDispatcher(
		c.CreatePutOrderCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateCloseOrderCommandHandler(),
		c.callbacks,
	)
}

func (c *CompositionRoot) CreateGetSuspendedOrdersQueryHandler() queries.GetSuspendedOrdersQueryHandler {
	return queries.NewGetSuspendedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(watchdogThreshold time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetSuspendedOrdersQueryHandler(), watchdogThreshold, c.logger)
}
