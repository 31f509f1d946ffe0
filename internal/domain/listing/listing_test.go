package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_OrderByFueraDeListaCaeAIdentidad(t *testing.T) {
	tests := []struct {
		name     string
		orderBy  string
		allow    AllowList
		expected Column
	}{
		{"vacío", "", ItemColumns, ItemID},
		{"solo espacios", "   ", ItemColumns, ItemID},
		{"columna válida", "quantity", ItemColumns, ItemQuantity},
		{"mayúsculas", "QUANTITY", ItemColumns, ItemQuantity},
		{"mayúsculas mezcladas", "Low_Stock_Threshold", ItemColumns, ItemLowStockThreshold},
		{"espacios alrededor no coinciden", "  name  ", ItemColumns, ItemID},
		{"columna inexistente", "price", ItemColumns, ItemID},
		{"columna de otra entidad", "abbreviation", ItemColumns, ItemID},
		{"inyección con punto y coma", "name; DROP TABLE items;--", ItemColumns, ItemID},
		{"inyección con comillas", "name'--", ItemColumns, ItemID},
		{"inyección con espacios", "name desc, item_id", ItemColumns, ItemID},
		{"identidad de categoría", "CATEGORY_ID", ItemCategoryColumns, CategoryID},
		{"abreviatura de unidad", "abbreviation", UnitOfMeasureColumns, UnitOfMeasureAbbreviation},
		{"fecha no permitida en proveedor", "created_at", VendorColumns, VendorID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Build(Params{OrderBy: tt.orderBy}, tt.allow)
			assert.Equal(t, tt.expected, plan.Column)
			assert.True(t, plan.Ascending)
			assert.Nil(t, plan.Limit)
		})
	}
}

func TestBuild_Direccion(t *testing.T) {
	f, tr := false, true
	assert.True(t, Build(Params{}, VendorColumns).Ascending)
	assert.True(t, Build(Params{Ascending: &tr}, VendorColumns).Ascending)
	assert.False(t, Build(Params{Ascending: &f}, VendorColumns).Ascending)
}

func TestBuild_LimitSeCopiaSinTope(t *testing.T) {
	limit := 100000
	plan := Build(Params{Limit: &limit}, ItemColumns)
	require.NotNil(t, plan.Limit)
	assert.Equal(t, 100000, *plan.Limit)

	limit = 3
	assert.Equal(t, 100000, *plan.Limit, "el plan no debe compartir memoria con los parámetros")
}

func TestAllowList_IdentidadSiempreIncluida(t *testing.T) {
	for _, allow := range []AllowList{ItemColumns, ItemCategoryColumns, VendorColumns, UnitOfMeasureColumns} {
		assert.Contains(t, allow.Columns(), allow.Identity())
		assert.Equal(t, allow.Identity(), allow.Resolve(string(allow.Identity())))
	}
	assert.Len(t, ItemColumns.Columns(), 8)
	assert.Len(t, UnitOfMeasureColumns.Columns(), 4)
}
