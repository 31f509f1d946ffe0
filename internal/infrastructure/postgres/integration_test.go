//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/inventory-service/internal/application/inventory"
	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
	"github.com/jhoicas/inventory-service/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-service/pkg/config"
)

// newTestDB levanta Postgres en un contenedor, aplica las migraciones y devuelve el runner.
func newTestDB(t *testing.T) (*postgres.TxRunner, inventory.Repositories) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("inventory_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := postgres.NewMigrator(dsn, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	require.NoError(t, m.Close())

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return postgres.NewTxRunner(pool), postgres.NewRepositories(pool)
}

func seedLookups(t *testing.T, repos inventory.Repositories) (int64, int64, int64) {
	t.Helper()
	ctx := context.Background()
	cat := &entity.ItemCategory{Name: "Electronics", Description: "Electronic devices"}
	require.NoError(t, repos.Categories.Create(ctx, cat))
	ven := &entity.Vendor{Name: "Vendor A", Description: "Electronics supplier"}
	require.NoError(t, repos.Vendors.Create(ctx, ven))
	uom := &entity.UnitOfMeasure{Name: "Piece", Abbreviation: "pc", Description: "Single item"}
	require.NoError(t, repos.UnitsOfMeasure.Create(ctx, uom))
	return cat.ID, ven.ID, uom.ID
}

func TestPostgres_ItemLifecycle(t *testing.T) {
	tx, repos := newTestDB(t)
	ctx := context.Background()
	catID, venID, uomID := seedLookups(t, repos)

	it := &entity.Item{
		ItemCode: "ELEC001", Name: "Smartphone", CategoryID: catID, VendorID: &venID,
		UnitOfMeasureID: uomID, Quantity: 50, LowStockThreshold: 10,
	}
	require.NoError(t, repos.Items.Create(ctx, it))
	assert.NotZero(t, it.ID)
	assert.Nil(t, it.UpdatedAt)

	got, err := repos.Items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Vendor)
	assert.Equal(t, "Vendor A", got.Vendor.Name)
	assert.Equal(t, "pc", got.UnitOfMeasure.Abbreviation)

	// descuento con guarda
	require.NoError(t, tx.Run(ctx, func(r inventory.Repositories) error {
		return r.Items.DeductQuantity(ctx, it.ID, 45)
	}))
	err = repos.Items.DeductQuantity(ctx, it.ID, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	err = repos.Items.DeductQuantity(ctx, 9999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	low, err := repos.Items.ListLowStock(ctx, listing.Build(listing.Params{}, listing.ItemColumns))
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, int64(5), low[0].Quantity)

	// sin proveedor
	got.VendorID = nil
	require.NoError(t, repos.Items.Update(ctx, got))
	got, err = repos.Items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Vendor)
	assert.NotNil(t, got.UpdatedAt)

	require.NoError(t, repos.Items.Delete(ctx, it.ID))
	assert.ErrorIs(t, repos.Items.Delete(ctx, it.ID), domain.ErrNotFound)
}

func TestPostgres_Restricciones(t *testing.T) {
	tx, repos := newTestDB(t)
	ctx := context.Background()
	catID, _, uomID := seedLookups(t, repos)

	err := repos.Categories.Create(ctx, &entity.ItemCategory{Name: "Electronics", Description: "dup"})
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.ConstraintUnique, ce.Kind)
	assert.Contains(t, ce.Detail, "Electronics")

	it := &entity.Item{ItemCode: "X1", Name: "x", CategoryID: catID, UnitOfMeasureID: uomID}
	require.NoError(t, repos.Items.Create(ctx, it))

	// item_code se indexa pero no es único
	same := &entity.Item{ItemCode: "X1", Name: "y", CategoryID: catID, UnitOfMeasureID: uomID}
	require.NoError(t, repos.Items.Create(ctx, same))
	assert.NotEqual(t, it.ID, same.ID)

	err = repos.Categories.Delete(ctx, catID)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.ConstraintForeignKey, ce.Kind)

	// la transacción fallida no deja rastros
	err = tx.Run(ctx, func(r inventory.Repositories) error {
		if err := r.Vendors.Create(ctx, &entity.Vendor{Name: "Temporal", Description: "x"}); err != nil {
			return err
		}
		return domain.ErrInvalidInput
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	vendors, err := repos.Vendors.List(ctx, listing.Build(listing.Params{OrderBy: "name"}, listing.VendorColumns))
	require.NoError(t, err)
	for _, v := range vendors {
		assert.NotEqual(t, "Temporal", v.Name)
	}
}

func TestPostgres_ListPlan(t *testing.T) {
	_, repos := newTestDB(t)
	ctx := context.Background()
	for _, name := range []string{"b", "c", "a"} {
		require.NoError(t, repos.Categories.Create(ctx, &entity.ItemCategory{Name: name, Description: "d"}))
	}
	two := 2
	asc := false
	list, err := repos.Categories.List(ctx, listing.Build(listing.Params{OrderBy: "NAME", Ascending: &asc, Limit: &two}, listing.ItemCategoryColumns))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, "b", list[1].Name)
}
