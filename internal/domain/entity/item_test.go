package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/pkg/optional"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func baseItem() entity.Item {
	return entity.Item{
		ID:                1,
		ItemCode:          "ELEC001",
		Name:              "Smartphone",
		Description:       strPtr("A high-end smartphone"),
		CategoryID:        1,
		VendorID:          intPtr(1),
		UnitOfMeasureID:   1,
		Quantity:          50,
		LowStockThreshold: 10,
		CreatedAt:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Category:          &entity.ItemCategory{ID: 1, Name: "Electronics"},
		Vendor:            &entity.Vendor{ID: 1, Name: "Vendor A"},
		UnitOfMeasure:     &entity.UnitOfMeasure{ID: 1, Name: "Piece"},
	}
}

func TestItemApply_PatchVacioNoCambiaNada(t *testing.T) {
	item := baseItem()
	before := baseItem()
	item.Apply(entity.ItemPatch{})
	assert.Equal(t, before, item)
}

func TestItemApply_SoloCamposPresentes(t *testing.T) {
	tests := []struct {
		name   string
		patch  entity.ItemPatch
		mutate func(*entity.Item)
	}{
		{
			name:   "name",
			patch:  entity.ItemPatch{Name: optional.Of("Phone")},
			mutate: func(i *entity.Item) { i.Name = "Phone" },
		},
		{
			name:   "quantity en cero",
			patch:  entity.ItemPatch{Quantity: optional.Of[int64](0)},
			mutate: func(i *entity.Item) { i.Quantity = 0 },
		},
		{
			name:   "description null la limpia",
			patch:  entity.ItemPatch{Description: optional.Null[string]()},
			mutate: func(i *entity.Item) { i.Description = nil },
		},
		{
			name:  "vendor null la limpia y suelta la referencia",
			patch: entity.ItemPatch{VendorID: optional.Null[int64]()},
			mutate: func(i *entity.Item) {
				i.VendorID = nil
				i.Vendor = nil
			},
		},
		{
			name:  "cambio de categoría suelta la referencia cargada",
			patch: entity.ItemPatch{CategoryID: optional.Of[int64](2)},
			mutate: func(i *entity.Item) {
				i.CategoryID = 2
				i.Category = nil
			},
		},
		{
			name:   "misma categoría conserva la referencia",
			patch:  entity.ItemPatch{CategoryID: optional.Of[int64](1)},
			mutate: func(i *entity.Item) {},
		},
		{
			name: "varios campos",
			patch: entity.ItemPatch{
				ItemCode:          optional.Of("ELEC999"),
				LowStockThreshold: optional.Of[int64](3),
			},
			mutate: func(i *entity.Item) {
				i.ItemCode = "ELEC999"
				i.LowStockThreshold = 3
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := baseItem()
			got.Apply(tt.patch)
			want := baseItem()
			tt.mutate(&want)
			assert.Equal(t, want, got)
			assert.Equal(t, int64(1), got.ID, "la identidad nunca cambia")
		})
	}
}

func TestItem_StockHelpers(t *testing.T) {
	item := baseItem()
	assert.False(t, item.IsLowStock())
	assert.True(t, item.CanDeduct(50))
	assert.False(t, item.CanDeduct(51))

	item.Quantity = 5
	assert.True(t, item.IsLowStock())
	item.Quantity = 10
	assert.False(t, item.IsLowStock(), "igual al umbral no es stock bajo")
}

func TestCatalogApply(t *testing.T) {
	c := entity.ItemCategory{ID: 3, Name: "Clothing", Description: "Apparel"}
	c.Apply(entity.ItemCategoryPatch{Description: optional.Of("Apparel and garments")})
	assert.Equal(t, "Clothing", c.Name)
	assert.Equal(t, "Apparel and garments", c.Description)

	v := entity.Vendor{ID: 2, Name: "Vendor B", Description: "Furniture supplier"}
	v.Apply(entity.VendorPatch{Name: optional.Of("Vendor Bee")})
	assert.Equal(t, "Vendor Bee", v.Name)
	assert.Equal(t, "Furniture supplier", v.Description)

	u := entity.UnitOfMeasure{ID: 1, Name: "Piece", Abbreviation: "pc", Description: "Individual unit"}
	u.Apply(entity.UnitOfMeasurePatch{Abbreviation: optional.Of("pcs")})
	require.Equal(t, "pcs", u.Abbreviation)
	assert.Equal(t, "Piece", u.Name)
}
