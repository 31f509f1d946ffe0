package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
)

// Lookups ids de las filas de referencia creadas por SeedLookups.
type Lookups struct {
	CategoryID      int64
	VendorID        int64
	UnitOfMeasureID int64
}

// SeedLookups crea una categoría, un proveedor y una unidad de medida.
func (s *Store) SeedLookups(t *testing.T) Lookups {
	t.Helper()
	ctx := context.Background()
	repos := s.Repositories()

	cat := &entity.ItemCategory{Name: "Electronics", Description: "Electronic devices and accessories"}
	require.NoError(t, repos.Categories.Create(ctx, cat))
	ven := &entity.Vendor{Name: "Vendor A", Description: "Electronics supplier"}
	require.NoError(t, repos.Vendors.Create(ctx, ven))
	uom := &entity.UnitOfMeasure{Name: "Piece", Abbreviation: "pc", Description: "Single item"}
	require.NoError(t, repos.UnitsOfMeasure.Create(ctx, uom))

	return Lookups{CategoryID: cat.ID, VendorID: ven.ID, UnitOfMeasureID: uom.ID}
}

// SeedItem crea un ítem con las referencias dadas.
func (s *Store) SeedItem(t *testing.T, l Lookups, code string, quantity, threshold int64) *entity.Item {
	t.Helper()
	vendor := l.VendorID
	it := &entity.Item{
		ItemCode:          code,
		Name:              code,
		CategoryID:        l.CategoryID,
		VendorID:          &vendor,
		UnitOfMeasureID:   l.UnitOfMeasureID,
		Quantity:          quantity,
		LowStockThreshold: threshold,
	}
	require.NoError(t, s.Repositories().Items.Create(context.Background(), it))
	return it
}
