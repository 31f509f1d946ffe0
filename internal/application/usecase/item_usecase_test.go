package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/application/usecase"
	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/testutil/memstore"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }
func limit(n int) *int        { return &n }
func boolPtr(b bool) *bool    { return &b }

func newItemUseCase(t *testing.T) (*usecase.ItemUseCase, *memstore.Store, memstore.Lookups) {
	t.Helper()
	store := memstore.New()
	l := store.SeedLookups(t)
	return usecase.NewItemUseCase(store.Repositories().Items, store), store, l
}

func createReq(l memstore.Lookups, code string, qty, threshold int64) dto.CreateItemRequest {
	return dto.CreateItemRequest{
		ItemCode:          code,
		Name:              "Smartphone",
		Description:       strPtr("A high-end smartphone"),
		CategoryID:        l.CategoryID,
		VendorID:          intPtr(l.VendorID),
		UnitOfMeasure:     l.UnitOfMeasureID,
		Quantity:          qty,
		LowStockThreshold: threshold,
	}
}

func decodeUpdate(t *testing.T, body string) dto.UpdateItemRequest {
	t.Helper()
	var in dto.UpdateItemRequest
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

// ─── Create ──────────────────────────────────────────────────────────────────

func TestItemCreate_EmbebeReferencias(t *testing.T) {
	uc, _, l := newItemUseCase(t)

	got, err := uc.Create(context.Background(), createReq(l, "ELEC001", 50, 10))
	require.NoError(t, err)
	assert.NotZero(t, got.ItemID)
	assert.Nil(t, got.UpdatedAt)
	require.NotNil(t, got.ItemCategory)
	assert.Equal(t, "Electronics", got.ItemCategory.Name)
	require.NotNil(t, got.Vendor)
	assert.Equal(t, "Vendor A", got.Vendor.Name)
	require.NotNil(t, got.Uom)
	assert.Equal(t, "pc", got.Uom.Abbreviation)
}

func TestItemCreate_SinProveedor(t *testing.T) {
	uc, _, l := newItemUseCase(t)
	in := createReq(l, "ELEC001", 50, 10)
	in.VendorID = nil

	got, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, got.VendorID)
	assert.Nil(t, got.Vendor)
}

func TestItemCreate_ReferenciaInexistenteNoInserta(t *testing.T) {
	uc, _, l := newItemUseCase(t)
	in := createReq(l, "ELEC001", 50, 10)
	in.CategoryID = 999

	_, err := uc.Create(context.Background(), in)
	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "category_id", refErr.Field)
	assert.Equal(t, int64(999), refErr.Value)

	list, err := uc.List(context.Background(), dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestItemCreate_CodigoRepetidoSePermite(t *testing.T) {
	uc, _, l := newItemUseCase(t)
	ctx := context.Background()
	first, err := uc.Create(ctx, createReq(l, "ELEC001", 50, 10))
	require.NoError(t, err)

	second, err := uc.Create(ctx, createReq(l, "ELEC001", 1, 1))
	require.NoError(t, err)
	assert.NotEqual(t, first.ItemID, second.ItemID)
	assert.Equal(t, "ELEC001", second.ItemCode)

	all, err := uc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// ─── Read / List ─────────────────────────────────────────────────────────────

func TestItemGetByID_NoExiste(t *testing.T) {
	uc, _, _ := newItemUseCase(t)
	_, err := uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemList_OrdenYLimite(t *testing.T) {
	uc, store, l := newItemUseCase(t)
	store.SeedItem(t, l, "B", 30, 5)
	store.SeedItem(t, l, "A", 10, 5)
	store.SeedItem(t, l, "C", 20, 5)
	ctx := context.Background()

	tests := []struct {
		name  string
		q     dto.ListQuery
		codes []string
	}{
		{"por defecto ordena por id", dto.ListQuery{}, []string{"B", "A", "C"}},
		{"por cantidad descendente", dto.ListQuery{OrderBy: "quantity", Ascending: boolPtr(false)}, []string{"B", "C", "A"}},
		{"nombre de columna sin distinguir mayúsculas", dto.ListQuery{OrderBy: "ITEM_CODE"}, []string{"A", "B", "C"}},
		{"con espacios cae a id", dto.ListQuery{OrderBy: " item_code "}, []string{"B", "A", "C"}},
		{"columna desconocida cae a id", dto.ListQuery{OrderBy: "quantity; DROP TABLE item"}, []string{"B", "A", "C"}},
		{"límite", dto.ListQuery{OrderBy: "item_code", Limit: limit(2)}, []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.List(ctx, tt.q)
			require.NoError(t, err)
			codes := make([]string, 0, len(got))
			for _, it := range got {
				codes = append(codes, it.ItemCode)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestItemListLowStock(t *testing.T) {
	uc, store, l := newItemUseCase(t)
	store.SeedItem(t, l, "OK", 50, 10)
	store.SeedItem(t, l, "LOW", 3, 10)
	store.SeedItem(t, l, "EQUAL", 10, 10)

	got, err := uc.ListLowStock(context.Background(), dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LOW", got[0].ItemCode)
}

// ─── Update ──────────────────────────────────────────────────────────────────

func TestItemUpdate_SoloCamposEnviados(t *testing.T) {
	uc, _, l := newItemUseCase(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, createReq(l, "ELEC001", 50, 10))
	require.NoError(t, err)

	got, err := uc.Update(ctx, created.ItemID, decodeUpdate(t, `{"quantity": 40}`))
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.Quantity)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.VendorID, got.VendorID)
	assert.NotNil(t, got.UpdatedAt)
}

func TestItemUpdate_NullLimpiaColumnasNulables(t *testing.T) {
	uc, _, l := newItemUseCase(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, createReq(l, "ELEC001", 50, 10))
	require.NoError(t, err)

	got, err := uc.Update(ctx, created.ItemID, decodeUpdate(t, `{"description": null, "vendor_id": null}`))
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.VendorID)
	assert.Nil(t, got.Vendor)
	assert.Equal(t, int64(50), got.Quantity)
}

func TestItemUpdate_NoExiste(t *testing.T) {
	uc, _, _ := newItemUseCase(t)
	_, err := uc.Update(context.Background(), 77, decodeUpdate(t, `{"name": "x"}`))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUpdate_FKInvalidaEsViolacionDeRestriccion(t *testing.T) {
	uc, _, l := newItemUseCase(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, createReq(l, "ELEC001", 50, 10))
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ItemID, decodeUpdate(t, `{"category_id": 999}`))
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.ConstraintForeignKey, ce.Kind)

	after, err := uc.GetByID(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, l.CategoryID, after.CategoryID)
	assert.Nil(t, after.UpdatedAt)
}

// ─── Delete / Deduct ─────────────────────────────────────────────────────────

func TestItemDelete(t *testing.T) {
	uc, store, l := newItemUseCase(t)
	it := store.SeedItem(t, l, "ELEC001", 1, 1)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, it.ID))
	err := uc.Delete(ctx, it.ID)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, it.ID, nf.ID)
}

func TestItemDeductQuantity(t *testing.T) {
	uc, store, l := newItemUseCase(t)
	it := store.SeedItem(t, l, "ELEC001", 50, 10)
	ctx := context.Background()

	got, err := uc.DeductQuantity(ctx, it.ID, 45)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Quantity)

	_, err = uc.DeductQuantity(ctx, it.ID, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestItemHasItems(t *testing.T) {
	uc, store, l := newItemUseCase(t)
	ctx := context.Background()

	has, err := uc.HasItems(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	store.SeedItem(t, l, "X", 1, 1)
	has, err = uc.HasItems(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

// ─── Escenario completo ──────────────────────────────────────────────────────

func TestEscenario_CategoriaUnidadItemYDescuentos(t *testing.T) {
	store := memstore.New()
	repos := store.Repositories()
	categories := usecase.NewItemCategoryUseCase(repos.Categories, store)
	uoms := usecase.NewUnitOfMeasureUseCase(repos.UnitsOfMeasure, store)
	items := usecase.NewItemUseCase(repos.Items, store)
	ctx := context.Background()

	cat, err := categories.Create(ctx, dto.CreateItemCategoryRequest{Name: "Electronics", Description: "Devices"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cat.CategoryID)

	uom, err := uoms.Create(ctx, dto.CreateUnitOfMeasureRequest{Name: "Piece", Abbreviation: "pc", Description: "Individual unit"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), uom.UomID)

	item, err := items.Create(ctx, dto.CreateItemRequest{
		ItemCode:          "ELEC001",
		Name:              "Smartphone",
		CategoryID:        1,
		UnitOfMeasure:     1,
		Quantity:          50,
		LowStockThreshold: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), item.Quantity)
	assert.Nil(t, item.Vendor)

	got, err := items.DeductQuantity(ctx, item.ItemID, 45)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Quantity)

	low, err := items.ListLowStock(ctx, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, item.ItemID, low[0].ItemID)

	_, err = items.DeductQuantity(ctx, item.ItemID, 10)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, err := items.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), after.Quantity)
}
