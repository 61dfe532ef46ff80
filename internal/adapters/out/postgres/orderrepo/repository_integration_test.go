package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"checkout/internal/adapters/out/postgres/orderrepo"
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

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
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

	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newOrder(number string) *order.Order {
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
	return aggregate
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGetByNumber_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder("R100000001")

	address, err := order.NewAddress("Jo", "Buyer", "1 Main St", "Springfield", "12345", "US")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.SetBillAddress(address))
	suite.Require().NoError(aggregate.SetShipAddress(address))

	shipment, err := order.NewShipment([]string{"MUG-1"})
	suite.Require().NoError(err)
	aggregate.SetProposedShipments([]order.Shipment{shipment})

	amount, err := kernel.NewMoney(4200, "USD")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("credit_card", amount, map[string]any{"number": "4111"})
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddPayment(payment))

	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	loaded, err := suite.repo.GetByNumber(ctx, "R100000001")
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(aggregate))
	suite.Equal(aggregate.Email(), loaded.Email())
	suite.Equal(order.StateCart, loaded.State())
	suite.Equal(aggregate.StepSet().Steps(), loaded.StepSet().Steps())
	suite.Require().Len(loaded.LineItems(), 1)
	suite.Equal("MUG-1", loaded.LineItems()[0].SKU())
	suite.Equal(int64(4200), loaded.Total().Cents())
	suite.Require().NotNil(loaded.BillAddress())
	suite.Equal("1 Main St", loaded.BillAddress().Street())
	suite.Require().Len(loaded.Payments(), 1)
	suite.Equal(int64(4200), loaded.Payments()[0].Amount().Cents())
	suite.Equal("4111", loaded.Payments()[0].Source()["number"])
	suite.Require().Len(loaded.Shipments(), 1)
	suite.Equal([]string{"MUG-1"}, loaded.Shipments()[0].SKUs())
	suite.Equal([]string{"credit_card"}, loaded.PaymentMethods())
}

func (suite *GormOrderRepositoryTestSuite) TestGetByNumber_UnknownNumberIsNotFound() {
	_, err := suite.repo.GetByNumber(context.Background(), "R999999999")
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_PersistsStateAndClearedCollections() {
	ctx := context.Background()
	aggregate := suite.newOrder("R100000002")
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	amount, err := kernel.NewMoney(4200, "USD")
	suite.Require().NoError(err)
	payment, err := order.NewPayment("credit_card", amount, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddPayment(payment))
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	// A replace-style submission later clears the payments again.
	aggregate.ClearPayments()
	moved, err := aggregate.Next()
	suite.Require().NoError(err)
	suite.True(moved)
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	loaded, err := suite.repo.GetByNumber(ctx, "R100000002")
	suite.Require().NoError(err)
	suite.Equal(order.StateAddress, loaded.State())
	suite.Empty(loaded.Payments())
}

func (suite *GormOrderRepositoryTestSuite) TestUpdate_UnknownOrderIsError() {
	err := suite.repo.Update(context.Background(), suite.newOrder("R100000003"))
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestAssociateUser_WritesColumnDirectly() {
	ctx := context.Background()
	aggregate := suite.newOrder("R100000004")
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	userID := kernel.NewUUID()
	suite.Require().NoError(suite.repo.AssociateUser(ctx, aggregate, userID))

	loaded, err := suite.repo.GetByNumber(ctx, "R100000004")
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.UserID())
	suite.True(loaded.UserID().IsEqual(userID))
}

func (suite *GormOrderRepositoryTestSuite) TestGetStaleCheckouts_FiltersByStateAndAge() {
	ctx := context.Background()

	stale := suite.newOrder("R100000005")
	suite.Require().NoError(suite.repo.Add(ctx, stale))

	fresh := suite.newOrder("R100000006")
	suite.Require().NoError(suite.repo.Add(ctx, fresh))

	doneStale := suite.newOrder("R100000007")
	suite.Require().NoError(doneStale.Cancel())
	suite.Require().NoError(suite.repo.Add(ctx, doneStale))

	// Backdate everything except the fresh order past the cutoff.
	backdate := time.Now().Add(-3 * time.Hour)
	for _, number := range []string{"R100000005", "R100000007"} {
		err := suite.db.Exec("UPDATE orders SET updated_at = ? WHERE number = ?", backdate, number).Error
		suite.Require().NoError(err)
	}

	found, err := suite.repo.GetStaleCheckouts(ctx, time.Now().Add(-2*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("R100000005", found[0].Number())
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
