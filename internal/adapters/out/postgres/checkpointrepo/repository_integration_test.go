package checkpointrepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/checkpointrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/unit"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// CheckpointRepositoryIntegrationTestSuite provides integration tests for
// CheckpointRepository using PostgreSQL containers.
type CheckpointRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *checkpointrepo.GormCheckpointRepository
	tracker    *MockAggregateTracker
}

func (suite *CheckpointRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&checkpointrepo.CheckpointDTO{}))
}

func (suite *CheckpointRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CheckpointRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE checkpoints").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = checkpointrepo.NewGormCheckpointRepository(suite.db, suite.tracker)
}

func (suite *CheckpointRepositoryIntegrationTestSuite) TestAddAndExists() {
	ctx := context.Background()

	cp, err := unit.NewCheckpoint(kernel.NewUUID(), unit.PickedUp, time.Time{}, "Warehouse A", "scanned")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cp))

	found, err := suite.repository.Exists(ctx, cp.ID())
	suite.Require().NoError(err)
	suite.True(found)

	found, err = suite.repository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *CheckpointRepositoryIntegrationTestSuite) TestAdd_IsIdempotentOnID() {
	ctx := context.Background()
	unitID := kernel.NewUUID()

	cp, err := unit.NewCheckpoint(unitID, unit.InTransit, time.Time{}, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cp))
	suite.Require().NoError(suite.repository.Add(ctx, cp))

	history, err := suite.repository.GetAllByUnitID(ctx, unitID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.True(history[0].IsEqual(cp))
}

func (suite *CheckpointRepositoryIntegrationTestSuite) TestGetAllByUnitID_SortsByTimestamp() {
	ctx := context.Background()
	unitID := kernel.NewUUID()
	base := time.Now().UTC().Add(-time.Hour)

	offsets := []time.Duration{40 * time.Minute, 5 * time.Minute, 20 * time.Minute}
	for _, offset := range offsets {
		cp, err := unit.NewCheckpoint(unitID, unit.AtFacility, base.Add(offset), "", "")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, cp))
	}

	history, err := suite.repository.GetAllByUnitID(ctx, unitID)
	suite.Require().NoError(err)
	suite.Require().Len(history, len(offsets))
	for i := 1; i < len(history); i++ {
		suite.False(history[i].Timestamp().Before(history[i-1].Timestamp()))
	}
}

func (suite *CheckpointRepositoryIntegrationTestSuite) TestGetAllByUnitID_FiltersByUnit() {
	ctx := context.Background()
	unitA := kernel.NewUUID()
	unitB := kernel.NewUUID()

	cpA, err := unit.NewCheckpoint(unitA, unit.PickedUp, time.Time{}, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cpA))

	cpB, err := unit.NewCheckpoint(unitB, unit.Delivered, time.Time{}, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cpB))

	history, err := suite.repository.GetAllByUnitID(ctx, unitA)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.True(history[0].IsEqual(cpA))

	history, err = suite.repository.GetAllByUnitID(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *CheckpointRepositoryIntegrationTestSuite) TestRoundTrip_PreservesFields() {
	ctx := context.Background()
	unitID := kernel.NewUUID()
	ts := time.Now().UTC().Add(-30 * time.Minute).Truncate(time.Microsecond)

	cp, err := unit.NewCheckpoint(unitID, unit.Exception, ts, "Customs, Rotterdam", "held for inspection")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, cp))

	history, err := suite.repository.GetAllByUnitID(ctx, unitID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)

	loaded := history[0]
	suite.True(loaded.ID().IsEqual(cp.ID()))
	suite.Equal(unit.Exception, loaded.Status())
	suite.True(loaded.Timestamp().Equal(ts))
	suite.Equal("Customs, Rotterdam", loaded.Location())
	suite.Equal("held for inspection", loaded.Notes())
}

func TestCheckpointRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CheckpointRepositoryIntegrationTestSuite))
}
