package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/adapters/out/postgres/deliveryrepo"
	"pharmacy/internal/adapters/out/postgres/inventoryrepo"
	"pharmacy/internal/adapters/out/postgres/notificationrepo"
	"pharmacy/internal/adapters/out/postgres/orderrepo"
	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then runs the schema migrations the workflow tables need.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&inventoryrepo.RecordDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, inventory, deliveries, notifications").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.InventoryRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow2.NotificationRepository())
	suite.NotNil(uow2.PaymentRepository())
	suite.NotNil(uow2.PrescriptionRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_Error() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.PendingPayment)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Read through a fresh unit of work without an open transaction.
	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.IsEqual(restored))
	suite.Equal(order.PendingPayment, restored.Status())
	suite.Len(restored.Items(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.PendingPayment)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count, "Rollback should discard the inserted order")
}

// TestUnitOfWork_DeliveryAndOrderCompleteTogether verifies that the final
// handover updates the delivery and the parent order in one transaction:
// after rollback neither row has moved, after commit both have.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryAndOrderCompleteTogether() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Processing)
	testDelivery, err := delivery.RestoreDelivery(
		kernel.NewUUID(),
		testOrder.ID(),
		delivery.HomeDelivery,
		"12 Main St",
		delivery.StatusOutForDelivery,
	)
	suite.Require().NoError(err)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.DeliveryRepository().Add(ctx, testDelivery))
	suite.Require().NoError(setup.Commit(ctx))

	complete := func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.DeliveryRepository().TransitionStatus(
			ctx, testDelivery.ID(), delivery.StatusOutForDelivery, delivery.StatusCompleted))
		suite.Require().NoError(uow.OrderRepository().TransitionStatus(
			ctx, testOrder.ID(), order.Processing, order.Completed))
	}

	// First attempt rolls back: neither row may move.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	complete(uow)
	suite.Require().NoError(uow.Rollback(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, restored.Status())

	restoredDelivery, err := suite.factory.Create().DeliveryRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusOutForDelivery, restoredDelivery.Status())

	// Second attempt commits: both rows move.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	complete(uow)
	suite.Require().NoError(uow.Commit(ctx))

	restored, err = suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, restored.Status())

	restoredDelivery, err = suite.factory.Create().DeliveryRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusCompleted, restoredDelivery.Status())
}

// TestUnitOfWork_ConcurrentDeductionsSerialize runs two transactions deducting
// from the same stock row. Row locking forces them to run one after the other,
// so both deductions land and the final quantity is exact.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentDeductionsSerialize() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	suite.Require().NoError(
		suite.factory.Create().InventoryRepository().Replenish(ctx, productID, branchID, 10))

	deduct := func(qty int) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		record, err := uow.InventoryRepository().GetForUpdate(ctx, productID, branchID)
		if err != nil {
			return err
		}
		if err = record.Deduct(qty); err != nil {
			return err
		}
		if err = uow.InventoryRepository().Save(ctx, record); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	errors := make(chan error, 2)
	for _, qty := range []int{4, 3} {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			errors <- deduct(qty)
		}(qty)
	}
	wg.Wait()
	close(errors)

	for err := range errors {
		suite.Require().NoError(err)
	}

	record, err := suite.factory.Create().InventoryRepository().GetForUpdate(ctx, productID, branchID)
	suite.Require().NoError(err)
	suite.Equal(3, record.Quantity(), "Both deductions should apply exactly once")
}

// TestUnitOfWork_ConcurrentDeductionsNoOversell races two transactions that
// each want 7 units from a stock of 10. The row lock serializes them: the
// winner commits, the loser re-reads the decremented quantity and fails the
// coverage check. Stock never goes negative.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentDeductionsNoOversell() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	suite.Require().NoError(
		suite.factory.Create().InventoryRepository().Replenish(ctx, productID, branchID, 10))

	deduct := func(qty int) error {
		uow := suite.factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()

		record, err := uow.InventoryRepository().GetForUpdate(ctx, productID, branchID)
		if err != nil {
			return err
		}
		if err = record.Deduct(qty); err != nil {
			return err
		}
		if err = uow.InventoryRepository().Save(ctx, record); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- deduct(7)
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		losses++
		suite.Require().ErrorIs(err, errs.ErrInsufficientStock)
	}
	suite.Equal(1, wins, "Exactly one placement should get the stock")
	suite.Equal(1, losses, "The other placement should be rejected")

	record, err := suite.factory.Create().InventoryRepository().GetForUpdate(ctx, productID, branchID)
	suite.Require().NoError(err)
	suite.Equal(3, record.Quantity(), "Only the winner's deduction should apply")
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(status order.Status) *order.Order {
	price, err := kernel.NewMoney(500)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	total, err := kernel.NewMoney(1000)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{item},
		status,
		total,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// TestUnitOfWorkIntegrationTestSuite runs the integration test suite.
// Skipped in short mode since it requires Docker.
func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
