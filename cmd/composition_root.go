package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"dispatch/internal/adapters/out/eventbus"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/shopdirectory"
	"dispatch/internal/adapters/out/redisgeo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	locationIndex *redisgeo.RedisLocationIndex
	shopDirectory *shopdirectory.GormShopDirectory
	notifier      *notify.SlogNotifier
	eventBus      *eventbus.SlogEventBus
	selector      services.CandidateSelector
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) (CompositionRoot, error) {
	uowFactory := *postgres.NewGormUnitOfWorkFactory(gormDB)
	locationIndex := redisgeo.NewRedisLocationIndex(redisClient)

	initialRadius, escalatedRadius, err := dispatchRadii(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	selector, err := services.NewCandidateSelector(
		locationIndex,
		busyCourierSource{uowFactory: uowFactory},
		initialRadius,
		escalatedRadius,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    uowFactory,
		locationIndex: locationIndex,
		shopDirectory: shopdirectory.NewGormShopDirectory(gormDB),
		notifier:      notify.NewSlogNotifier(logger),
		eventBus:      eventbus.NewSlogEventBus(logger),
		selector:      selector,
	}, nil
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f, c.locationIndex)
}

func (c *CompositionRoot) CreateReportLocationCommandHandler() commands.ReportLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportLocationCommandHandler(f, c.locationIndex)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.shopDirectory)
}

func (c *CompositionRoot) CreateUpdateShopOrderStageCommandHandler() commands.UpdateShopOrderStageCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShopOrderStageCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDispatchCommandHandler() commands.DispatchCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchCommandHandler(f, c.selector, c.notifier, c.eventBus)
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAssignmentCommandHandler(f, c.eventBus)
}

func (c *CompositionRoot) CreateRequestCompletionCommandHandler() commands.RequestCompletionCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCompletionCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateConfirmCompletionCommandHandler() commands.ConfirmCompletionCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCompletionCommandHandler(f, c.notifier, c.eventBus)
}

func (c *CompositionRoot) CreateSweepExpiredCodesCommandHandler() commands.SweepExpiredCodesCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepExpiredCodesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCurrentAssignmentQueryHandler() queries.GetCurrentAssignmentQueryHandler {
	return queries.NewGetCurrentAssignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBroadcastAssignmentsQueryHandler() queries.ListBroadcastAssignmentsQueryHandler {
	return queries.NewListBroadcastAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

// dispatchRadii resolves the candidate search radii from configuration.
// Unset values fall back to the service defaults.
func dispatchRadii(config Config) (float64, float64, error) {
	initial := services.DefaultInitialRadiusMeters
	escalated := services.DefaultEscalatedRadiusMeters

	if config.DispatchInitialRadiusMeters != "" {
		parsed, err := strconv.ParseFloat(config.DispatchInitialRadiusMeters, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parse DISPATCH_INITIAL_RADIUS_M: %w", err)
		}
		initial = parsed
	}

	if config.DispatchEscalatedRadiusMeters != "" {
		parsed, err := strconv.ParseFloat(config.DispatchEscalatedRadiusMeters, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parse DISPATCH_ESCALATED_RADIUS_M: %w", err)
		}
		escalated = parsed
	}

	return initial, escalated, nil
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}

// busyCourierSource answers busy-courier lookups for the candidate selector
// straight from assignment storage, outside any transaction.
type busyCourierSource struct {
	uowFactory postgres.GormUnitOfWorkFactory
}

func (s busyCourierSource) GetBusyCourierIDs(
	ctx context.Context,
	statuses []assignment.Status,
) ([]kernel.UUID, error) {
	return s.uowFactory.Create().AssignmentRepository().GetBusyCourierIDs(ctx, statuses)
}
