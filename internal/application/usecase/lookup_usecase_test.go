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

func TestItemCategory_CRUD(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewItemCategoryUseCase(store.Repositories().Categories, store)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateItemCategoryRequest{Name: "Furniture", Description: "Home and office furniture"})
	require.NoError(t, err)
	assert.Nil(t, created.UpdatedAt)

	_, err = uc.Create(ctx, dto.CreateItemCategoryRequest{Name: "Furniture", Description: "otra"})
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.ConstraintUnique, ce.Kind)

	var patch dto.UpdateItemCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Muebles"}`), &patch))
	updated, err := uc.Update(ctx, created.CategoryID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Furniture", updated.Name)
	assert.Equal(t, "Muebles", updated.Description)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, uc.Delete(ctx, created.CategoryID))
	_, err = uc.GetByID(ctx, created.CategoryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemCategory_BorrarConItemsEsRechazado(t *testing.T) {
	store := memstore.New()
	l := store.SeedLookups(t)
	store.SeedItem(t, l, "ELEC001", 1, 1)
	uc := usecase.NewItemCategoryUseCase(store.Repositories().Categories, store)

	err := uc.Delete(context.Background(), l.CategoryID)
	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.ConstraintForeignKey, ce.Kind)
}

func TestVendor_ListOrdenadoPorNombre(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewVendorUseCase(store.Repositories().Vendors, store)
	ctx := context.Background()
	for _, name := range []string{"Vendor C", "Vendor A", "Vendor B"} {
		_, err := uc.Create(ctx, dto.CreateVendorRequest{Name: name, Description: "d"})
		require.NoError(t, err)
	}

	got, err := uc.List(ctx, dto.ListQuery{OrderBy: "Name", Ascending: boolPtr(false)})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Vendor C", got[0].Name)
	assert.Equal(t, "Vendor A", got[2].Name)
}

func TestVendor_UpdateNoExiste(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewVendorUseCase(store.Repositories().Vendors, store)
	_, err := uc.Update(context.Background(), 9, dto.UpdateVendorRequest{})
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "proveedor", nf.Entity)
}

func TestUnitOfMeasure_AbreviaturaUnica(t *testing.T) {
	store := memstore.New()
	uc := usecase.NewUnitOfMeasureUseCase(store.Repositories().UnitsOfMeasure, store)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUnitOfMeasureRequest{Name: "Kilogram", Abbreviation: "kg", Description: "Weight"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateUnitOfMeasureRequest{Name: "Kilo", Abbreviation: "kg", Description: "Weight"})
	assert.ErrorIs(t, err, domain.ErrConstraint)
}

func TestUnitOfMeasure_FallaDelAlmacen(t *testing.T) {
	store := memstore.New()
	boom := errors.New("conexión rechazada")
	store.FailWith = boom
	uc := usecase.NewUnitOfMeasureUseCase(store.Repositories().UnitsOfMeasure, store)

	_, err := uc.List(context.Background(), dto.ListQuery{})
	assert.ErrorIs(t, err, boom)
}
