package cmd

import (
	"log/slog"
	"os"

	"pharmacy/internal/adapters/out/notifier"
	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/adapters/out/postgres/productcatalog"
	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/services"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateAccessPolicy() services.AccessPolicy {
	return services.NewAccessPolicy()
}

func (c *CompositionRoot) CreateProductCatalog() ports.ProductCatalog {
	return productcatalog.NewGormProductCatalog(c.gormDB)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.CreateProductCatalog())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitPrescriptionCommandHandler() commands.SubmitPrescriptionCommandHandler {
	var f commands.PrescriptionUoWFactory = FuncPrescriptionUoWFactory(func() commands.PrescriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPrescriptionCommandHandler(f)
}

func (c *CompositionRoot) CreateDecidePrescriptionCommandHandler() commands.DecidePrescriptionCommandHandler {
	var f commands.PrescriptionUoWFactory = FuncPrescriptionUoWFactory(func() commands.PrescriptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecidePrescriptionCommandHandler(f)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	var f commands.OrderStatusUoWFactory = FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitiatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.ConfirmPaymentUoWFactory = FuncConfirmPaymentUoWFactory(func() commands.ConfirmPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateReceiveShipmentCommandHandler() commands.ReceiveShipmentCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.DispatchNotificationsUoWFactory = FuncDispatchNotificationsUoWFactory(
		func() commands.DispatchNotificationsUoW {
			return c.uowFactory.Create()
		})
	return commands.NewDispatchNotificationsCommandHandler(f, notifier.NewLogNotifier(c.logger))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetValidationQueueQueryHandler() queries.GetValidationQueueQueryHandler {
	return queries.NewGetValidationQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueueQueryHandler() queries.GetPaymentQueueQueryHandler {
	return queries.NewGetPaymentQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFulfillmentQueueQueryHandler() queries.GetFulfillmentQueueQueryHandler {
	return queries.NewGetFulfillmentQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchInventoryQueryHandler() queries.GetBranchInventoryQueryHandler {
	return queries.NewGetBranchInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchNotificationsCommandHandler(), c.logger)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncPrescriptionUoWFactory func() commands.PrescriptionUoW

func (f FuncPrescriptionUoWFactory) Create() commands.PrescriptionUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}

type FuncConfirmPaymentUoWFactory func() commands.ConfirmPaymentUoW

func (f FuncConfirmPaymentUoWFactory) Create() commands.ConfirmPaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncDispatchNotificationsUoWFactory func() commands.DispatchNotificationsUoW

func (f FuncDispatchNotificationsUoWFactory) Create() commands.DispatchNotificationsUoW {
	return f()
}
