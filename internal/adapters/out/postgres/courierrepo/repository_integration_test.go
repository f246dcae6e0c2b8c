package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for
// CourierRepository using PostgreSQL containers.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *courierrepo.GormCourierRepository
	tracker    *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("Asha")

	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Once()

	err := suite.repository.Add(ctx, testCourier)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&courierrepo.CourierDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_ExistingCourier_RoundTrips() {
	ctx := context.Background()
	original := suite.createTestCourier("Asha")

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Email(), retrieved.Email())
	suite.Equal(original.Mobile(), retrieved.Mobile())
	suite.InDelta(original.Location().Latitude(), retrieved.Location().Latitude(), 1e-9)
	suite.InDelta(original.Location().Longitude(), retrieved.Location().Longitude(), 1e-9)
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_LocationAndDeactivation_Persist() {
	ctx := context.Background()
	testCourier := suite.createTestCourier("Asha")

	suite.tracker.On("TrackAggregate", testCourier.ID(), testCourier).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testCourier))

	newLocation, err := kernel.NewGeoPoint(12.97, 77.59)
	suite.Require().NoError(err)
	suite.Require().NoError(testCourier.MoveTo(newLocation))
	testCourier.Deactivate()

	suite.Require().NoError(suite.repository.Update(ctx, testCourier))

	retrieved, err := suite.repository.Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.InDelta(12.97, retrieved.Location().Latitude(), 1e-9)
	suite.InDelta(77.59, retrieved.Location().Longitude(), 1e-9)
	suite.False(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetByIDs_MissingIdentifiersAreSkipped() {
	ctx := context.Background()
	first := suite.createTestCourier("Asha")
	second := suite.createTestCourier("Ravi")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	retrieved, err := suite.repository.GetByIDs(ctx, []kernel.UUID{first.ID(), kernel.NewUUID(), second.ID()})
	suite.Require().NoError(err)
	suite.Len(retrieved, 2)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetByIDs_EmptyInput_ReturnsEmptySlice() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByIDs(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(retrieved)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestClosedConnection_ReturnsUnavailableError() {
	ctx := context.Background()

	connStr, err := suite.container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	closedDB, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)

	sqlDB, err := closedDB.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	tracker := new(MockAggregateTracker)
	repository := courierrepo.NewGormCourierRepository(closedDB, tracker)
	testCourier := suite.createTestCourier("Asha")

	suite.Require().ErrorIs(repository.Add(ctx, testCourier), errs.ErrUnavailable)
	suite.Require().ErrorIs(repository.Update(ctx, testCourier), errs.ErrUnavailable)

	_, err = repository.Get(ctx, testCourier.ID())
	suite.Require().ErrorIs(err, errs.ErrUnavailable)

	_, err = repository.GetByIDs(ctx, []kernel.UUID{testCourier.ID()})
	suite.Require().ErrorIs(err, errs.ErrUnavailable)

	tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(name string) *courier.Courier {
	location, err := kernel.NewGeoPoint(12.93, 77.61)
	suite.Require().NoError(err)

	testCourier, err := courier.NewCourier(kernel.NewUUID(), name, name+"@example.com", "+91900000001", location)
	suite.Require().NoError(err)

	return testCourier
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
