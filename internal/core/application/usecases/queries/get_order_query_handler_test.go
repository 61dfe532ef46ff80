package queries_test

import (
	"context"
	"testing"
	"time"

	"checkout/internal/adapters/out/postgres/orderrepo"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) insertOrder(number string) *order.Order {
	price, err := kernel.NewMoney(2100, "USD")
	suite.Require().NoError(err)
	li, err := order.NewLineItem("MUG-1", "Mug", 2, 10, price, true)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		"buyer@example.com",
		order.DefaultStepSet(),
		[]order.LineItem{li},
		[]string{"credit_card"},
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsOrderSummary() {
	suite.insertOrder("R300000001")

	query, err := queries.NewGetOrderQuery("R300000001")
	suite.Require().NoError(err)

	summary, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("R300000001", summary.Number)
	suite.Equal("buyer@example.com", summary.Email)
	suite.Equal("cart", summary.State)
	suite.Empty(summary.CouponCode)
	suite.Equal(int64(4200), summary.TotalCents)
	suite.Equal("USD", summary.Currency)
	suite.False(summary.UpdatedAt.IsZero())
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownNumberIsNotFound() {
	query, err := queries.NewGetOrderQuery("R999999999")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnconstructedQueryIsRejected() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
