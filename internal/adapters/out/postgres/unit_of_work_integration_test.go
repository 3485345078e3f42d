package postgres_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/checkpointrepo"
	"tracking/internal/adapters/out/postgres/unitrepo"
	"tracking/internal/core/domain/model/unit"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of the
// GORM unit of work across the checkpoint and shipment unit repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&unitrepo.ShipmentUnitDTO{}, &checkpointrepo.CheckpointDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_units, checkpoints").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsBothStores() {
	ctx := context.Background()

	u, err := unit.NewShipmentUnit("TRK-001")
	suite.Require().NoError(err)

	cp, err := unit.NewCheckpoint(u.ID(), unit.PickedUp, time.Time{}, "Warehouse A", "")
	suite.Require().NoError(err)
	suite.Require().NoError(u.AddCheckpoint(cp))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentUnitRepository().Add(ctx, u))
	suite.Require().NoError(uow.CheckpointRepository().Add(ctx, cp))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loaded, err := verify.ShipmentUnitRepository().GetByID(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(unit.PickedUp, loaded.Status())
	suite.Require().Len(loaded.Checkpoints(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothStores() {
	ctx := context.Background()

	u, err := unit.NewShipmentUnit("TRK-002")
	suite.Require().NoError(err)

	cp, err := unit.NewCheckpoint(u.ID(), unit.PickedUp, time.Time{}, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(u.AddCheckpoint(cp))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentUnitRepository().Add(ctx, u))
	suite.Require().NoError(uow.CheckpointRepository().Add(ctx, cp))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.ShipmentUnitRepository().GetByID(ctx, u.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	found, err := verify.CheckpointRepository().Exists(ctx, cp.ID())
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBeginTwice_DoesNotNest() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesOutsideTransaction_WriteImmediately() {
	ctx := context.Background()

	u, err := unit.NewShipmentUnit("TRK-003")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.ShipmentUnitRepository().Add(ctx, u))

	verify := suite.factory.Create()
	loaded, err := verify.ShipmentUnitRepository().GetByID(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(u))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
