package cmd

import (
	"log/slog"
	"time"

	"haulix/internal/adapters/out/lognotifier"
	"haulix/internal/adapters/out/postgres"
	"haulix/internal/adapters/out/postgres/orderrepo"
	"haulix/internal/adapters/out/tokenstore"
	"haulix/internal/core/application/usecases/commands"
	"haulix/internal/core/application/usecases/queries"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/core/domain/services"
	"haulix/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokenStore *tokenstore.GormTokenStore
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenStore: tokenstore.NewGormTokenStore(gormDB, time.Duration(config.TokenTTLHours)*time.Hour),
		notifier:   lognotifier.NewNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) TokenStore() *tokenstore.GormTokenStore {
	return c.tokenStore
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, oneTimeCodeGenerator{}, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateVerifyAccountCommandHandler() commands.VerifyAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.tokenStore)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPasswordResetCommandHandler(f, oneTimeCodeGenerator{}, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateVerifyResetCodeCommandHandler() commands.VerifyResetCodeCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyResetCodeCommandHandler(f)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetPasswordCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, trackingNumberGenerator{}, c.notifier, c.config.AdminEmail, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.config.EnforceTransitionPolicy, c.logger)
}

func (c *CompositionRoot) CreateCleanupAccountsCommandHandler() commands.CleanupAccountsCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupAccountsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetOwnerOrdersQueryHandler() queries.GetOwnerOrdersQueryHandler {
	return queries.NewGetOwnerOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

// orderReader binds the order repository straight to the database.
// Queries never track aggregates, so the tracker is a no-op.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type trackingNumberGenerator struct{}

func (trackingNumberGenerator) Generate(now time.Time) (string, error) {
	return services.NewTrackingNumber(now)
}

type oneTimeCodeGenerator struct{}

func (oneTimeCodeGenerator) Generate() (string, error) {
	return services.NewOneTimeCodeValue()
}
