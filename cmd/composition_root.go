package cmd

import (
	"logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"
	"logistics/internal/pkg/logger"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	validator  services.TransitionValidator
	logger     zerolog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, log zerolog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  services.NewTransitionValidator(operation.DefaultTransitionTable()),
		logger:     log,
	}
}

func (c *CompositionRoot) CreateCreateOperationCommandHandler() commands.CreateOperationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOperationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOperationStatusCommandHandler() commands.UpdateOperationStatusCommandHandler {
	var f commands.OperationUoWFactory = FuncOperationUoWFactory(func() commands.OperationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOperationStatusCommandHandler(f, c.validator,
		logger.WithComponent(c.logger, "update_operation_status"))
}

func (c *CompositionRoot) CreateAppendMovementCommandHandler() commands.AppendMovementCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendMovementCommandHandler(f)
}

func (c *CompositionRoot) CreateReportDelaysCommandHandler() commands.ReportDelaysCommandHandler {
	var f commands.OperationUoWFactory = FuncOperationUoWFactory(func() commands.OperationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportDelaysCommandHandler(f, logger.WithComponent(c.logger, "report_delays"))
}

func (c *CompositionRoot) CreateGetOperationQueryHandler() queries.GetOperationQueryHandler {
	return queries.NewGetOperationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOperationsQueryHandler() queries.ListOperationsQueryHandler {
	return queries.NewListOperationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListEntityMovementsQueryHandler() queries.ListEntityMovementsQueryHandler {
	return queries.NewListEntityMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOperationCommandHandler(),
		c.CreateUpdateOperationStatusCommandHandler(),
		c.CreateAppendMovementCommandHandler(),
		c.CreateGetOperationQueryHandler(),
		c.CreateListOperationsQueryHandler(),
		c.CreateListEntityMovementsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDelayReportJob(
			c.CreateReportDelaysCommandHandler(),
			c.config.DelayReportSchedule,
			c.config.DelayReportBatchSize,
			c.logger,
		),
	)
}

type FuncOperationUoWFactory func() commands.OperationUoW

func (f FuncOperationUoWFactory) Create() commands.OperationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
