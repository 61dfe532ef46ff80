package cmd

import (
	"checkout/internal/adapters/out/addressbook"
	"checkout/internal/adapters/out/auth"
	"checkout/internal/adapters/out/postgres"
	"checkout/internal/adapters/out/promo"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	authSvc    *auth.StaticAuthorizationService
	coupons    *promo.HTTPCouponApplicator
	hooks      *commands.HookRegistry
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	defaultAddress, err := order.NewAddress(
		"", "",
		config.DefaultAddressStreet,
		config.DefaultAddressCity,
		config.DefaultAddressZip,
		config.DefaultAddressCountry,
	)
	if err != nil {
		panic("default address is misconfigured: " + err.Error())
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		authSvc:    auth.NewStaticAuthorizationService(config.PrivilegedUserIDs),
		coupons:    promo.NewHTTPCouponApplicator(config.PromoServiceURL),
		hooks: commands.DefaultHookRegistry(
			addressbook.NewStaticAddressProvider(defaultAddress),
			services.NewShipmentProposer(),
		),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		c.authSvc,
		staticConfigProvider{currency: c.config.Currency},
		c.config.PaymentMethods,
	)
}

func (c *CompositionRoot) CreateAdvanceCheckoutCommandHandler() commands.AdvanceCheckoutCommandHandler {
	return commands.NewAdvanceCheckoutCommandHandler(c.orderUoWFactory(), c.hooks)
}

func (c *CompositionRoot) CreateUpdateCheckoutCommandHandler() commands.UpdateCheckoutCommandHandler {
	return commands.NewUpdateCheckoutCommandHandler(
		c.orderUoWFactory(),
		c.hooks,
		commands.NewAttributeSanitizer(),
		c.coupons,
		c.authSvc,
	)
}

func (c *CompositionRoot) CreateCancelStaleCheckoutsCommandHandler() commands.CancelStaleCheckoutsCommandHandler {
	return commands.NewCancelStaleCheckoutsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// staticConfigProvider implements ports.ConfigProvider from process config.
type staticConfigProvider struct {
	currency string
}

func (p staticConfigProvider) Currency() string {
	return p.currency
}
