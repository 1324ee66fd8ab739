package inventoryrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/postgres/inventoryrepo"
	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InventoryRepositoryIntegrationTestSuite provides integration tests for the
// stock repository, including the locking and upsert behavior that guards the
// non-negative quantity invariant under concurrency.
type InventoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *inventoryrepo.GormInventoryRepository
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&inventoryrepo.RecordDTO{}))
}

func (suite *InventoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory").Error)
	suite.repository = inventoryrepo.NewGormInventoryRepository(suite.db)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestReplenish_NewProduct_CreatesRow() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	err := suite.repository.Replenish(ctx, productID, branchID, 7)
	suite.Require().NoError(err)

	record, err := suite.repository.GetForUpdate(ctx, productID, branchID)
	suite.Require().NoError(err)
	suite.Equal(7, record.Quantity())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestReplenish_ExistingProduct_Increments() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Replenish(ctx, productID, branchID, 7))
	suite.Require().NoError(suite.repository.Replenish(ctx, productID, branchID, 5))

	record, err := suite.repository.GetForUpdate(ctx, productID, branchID)
	suite.Require().NoError(err)
	suite.Equal(12, record.Quantity())
}

// TestReplenish_ConcurrentShipments_AllApply verifies the upsert composes:
// increments racing on the same row always sum, regardless of ordering.
func (suite *InventoryRepositoryIntegrationTestSuite) TestReplenish_ConcurrentShipments_AllApply() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	const workers = 8
	var wg sync.WaitGroup
	errors := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errors <- suite.repository.Replenish(ctx, productID, branchID, 3)
		}()
	}
	wg.Wait()
	close(errors)

	for err := range errors {
		suite.Require().NoError(err)
	}

	record, err := suite.repository.GetForUpdate(ctx, productID, branchID)
	suite.Require().NoError(err)
	suite.Equal(workers*3, record.Quantity())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestReplenish_NonPositiveQuantity_Error() {
	ctx := context.Background()

	err := suite.repository.Replenish(ctx, kernel.NewUUID(), kernel.NewUUID(), 0)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	err = suite.repository.Replenish(ctx, kernel.NewUUID(), kernel.NewUUID(), -4)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetForUpdate_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetForUpdate(ctx, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestSave_PersistsDeductedQuantity() {
	ctx := context.Background()
	productID := kernel.NewUUID()
	branchID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Replenish(ctx, productID, branchID, 10))

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		repo := inventoryrepo.NewGormInventoryRepository(tx)
		record, txErr := repo.GetForUpdate(ctx, productID, branchID)
		if txErr != nil {
			return txErr
		}
		if txErr = record.Deduct(4); txErr != nil {
			return txErr
		}
		return repo.Save(ctx, record)
	})
	suite.Require().NoError(err)

	record, err := suite.repository.GetForUpdate(ctx, productID, branchID)
	suite.Require().NoError(err)
	suite.Equal(6, record.Quantity())
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestSave_MissingRow_NotFound() {
	ctx := context.Background()

	record, err := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 5)
	suite.Require().NoError(err)

	err = suite.repository.Save(ctx, record)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventoryRepositoryIntegrationTestSuite) TestGetByBranch_ReturnsOnlyBranchRows() {
	ctx := context.Background()
	branchID := kernel.NewUUID()
	otherBranchID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Replenish(ctx, kernel.NewUUID(), branchID, 3))
	suite.Require().NoError(suite.repository.Replenish(ctx, kernel.NewUUID(), branchID, 8))
	suite.Require().NoError(suite.repository.Replenish(ctx, kernel.NewUUID(), otherBranchID, 5))

	records, err := suite.repository.GetByBranch(ctx, branchID)
	suite.Require().NoError(err)
	suite.Len(records, 2)
	for _, record := range records {
		suite.True(record.BranchID().IsEqual(branchID))
	}
}

// TestInventoryRepositoryIntegrationTestSuite runs the integration test suite.
// Skipped in short mode since it requires Docker.
func TestInventoryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(InventoryRepositoryIntegrationTestSuite))
}
