package cmd

import (
	"registry/internal/adapters/out/memory/orderrepo"
	"registry/internal/adapters/out/memory/userrepo"
	"registry/internal/core/application/usecases/commands"
	"registry/internal/core/application/usecases/queries"
	"registry/internal/core/ports"
	"registry/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// CompositionRoot owns the stores for the lifetime of the process and
// hands out handlers bound to them. Every handler created from the same
// root shares the same stores.
type CompositionRoot struct {
	cfg       Config
	orderRepo ports.OrderRepository
	userRepo  ports.UserRepository
}

func NewCompositionRoot(cfg Config) *CompositionRoot {
	return &CompositionRoot{
		cfg:       cfg,
		orderRepo: orderrepo.NewInMemoryOrderRepository(),
		userRepo:  userrepo.NewInMemoryUserRepository(),
	}
}

// CreateJobManager schedules the order stats job on the configured
// OrderStatsSchedule, reporting into gauge.
func (c *CompositionRoot) CreateJobManager(gauge *prometheus.GaugeVec, logger *zap.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountOrdersByStatusQueryHandler(), gauge, c.cfg.OrderStatsSchedule, logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userRepo)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userRepo)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.userRepo)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.userRepo)
}
