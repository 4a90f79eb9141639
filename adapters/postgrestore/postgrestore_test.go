package postgrestore_test

import (
	"context"
	"testing"
	"time"

	"github.com/ddd-patterns/backend/adapters/postgrestore"
	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/product"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type stores struct {
	gormDB *gorm.DB
	sqlxDB *sqlx.DB
}

func setupPostgres(t *testing.T) stores {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15-alpine"),
		postgres.WithDatabase("shop"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	opts := postgrestore.Options{DSN: dsn}

	sqlxDB, err := postgrestore.NewSQLXConnection(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlxDB.Close() })

	n, err := postgrestore.Migrate(sqlxDB.DB)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	gormDB, err := postgrestore.NewConnection(opts)
	require.NoError(t, err)

	return stores{gormDB: gormDB, sqlxDB: sqlxDB}
}

func newCustomer(t *testing.T, id string) *customer.Customer {
	t.Helper()

	c, err := customer.New(id, "Customer "+id)
	require.NoError(t, err)

	a, err := customer.NewAddress("Street 1", 20, "City 1", "zipcode")
	require.NoError(t, err)
	require.NoError(t, c.ChangeAddress(a))

	return c
}

func TestPostgresStores(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	customerStore := postgrestore.NewCustomerStore(db.gormDB)
	productStore := postgrestore.NewProductStore(db.sqlxDB)
	orderStore := postgrestore.NewOrderStore(db.gormDB)

	t.Run("customer store", func(t *testing.T) {
		c := newCustomer(t, "123")
		require.NoError(t, customerStore.Create(ctx, c))
		assert.ErrorIs(t, customerStore.Create(ctx, c), customer.ErrAlreadyExists)

		got, err := customerStore.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, c, got)

		require.NoError(t, c.ChangeName("Customer 2"))
		require.NoError(t, c.Activate())
		c.AddRewardPoints(10)
		require.NoError(t, customerStore.Update(ctx, c))

		got, err = customerStore.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, c, got)

		// deactivation persists even though false is a zero value
		c.Deactivate()
		require.NoError(t, customerStore.Update(ctx, c))
		got, err = customerStore.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.False(t, got.IsActive())

		_, err = customerStore.GetByID(ctx, "456ABC")
		assert.ErrorIs(t, err, customer.ErrNotFound)

		noAddress, err := customer.New("124", "Customer 3")
		require.NoError(t, err)
		require.NoError(t, customerStore.Create(ctx, noAddress))

		all, err := customerStore.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Nil(t, all[1].Address)
	})

	t.Run("product store", func(t *testing.T) {
		p, err := product.New("p1", "Product 1", 100)
		require.NoError(t, err)
		p.WithDescription("first")

		require.NoError(t, productStore.Create(ctx, p))
		assert.ErrorIs(t, productStore.Create(ctx, p), product.ErrAlreadyExists)

		require.NoError(t, p.ChangePrice(150.5))
		require.NoError(t, productStore.Update(ctx, p))

		got, err := productStore.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, p, got)

		_, err = productStore.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, product.ErrNotFound)

		ghost, err := product.New("ghost", "Ghost", 1)
		require.NoError(t, err)
		assert.ErrorIs(t, productStore.Update(ctx, ghost), product.ErrNotFound)
	})

	t.Run("order store", func(t *testing.T) {
		p2, err := product.New("p2", "Product 2", 20)
		require.NoError(t, err)
		require.NoError(t, productStore.Create(ctx, p2))

		item1, err := checkout.NewOrderItem("o1", "Product 1", 150.5, "p1", 2)
		require.NoError(t, err)
		order, err := checkout.NewOrder("1", "123", []checkout.OrderItem{item1})
		require.NoError(t, err)

		require.NoError(t, orderStore.Create(ctx, order))
		assert.ErrorIs(t, orderStore.Create(ctx, order), checkout.ErrAlreadyExists)

		got, err := orderStore.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, order, got)

		item2, err := checkout.NewOrderItem("o2", "Product 2", 20, "p2", 3)
		require.NoError(t, err)
		require.NoError(t, order.AddItem(item2))
		require.NoError(t, orderStore.Update(ctx, order))

		got, err = orderStore.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, order, got)
		assert.Equal(t, 361.0, got.Total())

		var total float64
		require.NoError(t, db.sqlxDB.GetContext(ctx, &total, `SELECT total FROM orders WHERE id=$1`, "1"))
		assert.Equal(t, 361.0, total)

		_, err = orderStore.GetByID(ctx, "2")
		assert.ErrorIs(t, err, checkout.ErrNotFound)

		all, err := orderStore.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
