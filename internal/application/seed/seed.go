// Package seed carga el catálogo de demostración: 3 categorías, 3 unidades, 3 proveedores y 9 ítems.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/application/usecase"
)

// UseCases lo que necesita el seed.
type UseCases struct {
	Categories     *usecase.ItemCategoryUseCase
	Vendors        *usecase.VendorUseCase
	UnitsOfMeasure *usecase.UnitOfMeasureUseCase
	Items          *usecase.ItemUseCase
}

type itemSeed struct {
	code, name, description string
	category, vendor        string
	quantity, threshold     int64
}

var (
	categories = []dto.CreateItemCategoryRequest{
		{Name: "Electronics", Description: "Devices and gadgets"},
		{Name: "Furniture", Description: "Home and office furniture"},
		{Name: "Clothing", Description: "Apparel and garments"},
	}
	units = []dto.CreateUnitOfMeasureRequest{
		{Name: "Piece", Abbreviation: "pc", Description: "Individual unit"},
		{Name: "Kilogram", Abbreviation: "kg", Description: "Weight measurement"},
		{Name: "Liter", Abbreviation: "l", Description: "Volume measurement"},
	}
	vendors = []dto.CreateVendorRequest{
		{Name: "Vendor A", Description: "Primary electronics supplier"},
		{Name: "Vendor B", Description: "Furniture supplier"},
		{Name: "Vendor C", Description: "Clothing supplier"},
	}
	items = []itemSeed{
		{"ELEC001", "Smartphone", "A high-end smartphone", "Electronics", "Vendor A", 50, 10},
		{"ELEC002", "Laptop", "A powerful laptop", "Electronics", "Vendor A", 30, 5},
		{"ELEC003", "Headphones", "Noise-cancelling headphones", "Electronics", "Vendor A", 100, 20},
		{"FURN001", "Sofa", "A comfortable sofa", "Furniture", "Vendor B", 15, 3},
		{"FURN002", "Dining Table", "A wooden dining table", "Furniture", "Vendor B", 10, 2},
		{"FURN003", "Chair", "A sturdy chair", "Furniture", "Vendor B", 50, 10},
		{"CLOT001", "T-Shirt", "A cotton t-shirt", "Clothing", "Vendor C", 200, 50},
		{"CLOT002", "Jeans", "A pair of denim jeans", "Clothing", "Vendor C", 150, 30},
		{"CLOT003", "Jacket", "A warm jacket", "Clothing", "Vendor C", 100, 20},
	}
)

// Run carga el catálogo. Si ya hay algún ítem no hace nada y devuelve false.
func Run(ctx context.Context, uc UseCases, log zerolog.Logger) (bool, error) {
	has, err := uc.Items.HasItems(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: consultar ítems: %w", err)
	}
	if has {
		log.Info().Msg("seed: ya hay ítems, se omite")
		return false, nil
	}

	categoryIDs := make(map[string]int64, len(categories))
	for _, in := range categories {
		out, err := uc.Categories.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed: categoría %s: %w", in.Name, err)
		}
		categoryIDs[in.Name] = out.CategoryID
	}

	var pieceID int64
	for _, in := range units {
		out, err := uc.UnitsOfMeasure.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed: unidad %s: %w", in.Name, err)
		}
		if in.Abbreviation == "pc" {
			pieceID = out.UomID
		}
	}

	vendorIDs := make(map[string]int64, len(vendors))
	for _, in := range vendors {
		out, err := uc.Vendors.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed: proveedor %s: %w", in.Name, err)
		}
		vendorIDs[in.Name] = out.VendorID
	}

	for _, it := range items {
		description := it.description
		vendorID := vendorIDs[it.vendor]
		_, err := uc.Items.Create(ctx, dto.CreateItemRequest{
			ItemCode:          it.code,
			Name:              it.name,
			Description:       &description,
			CategoryID:        categoryIDs[it.category],
			VendorID:          &vendorID,
			UnitOfMeasure:     pieceID,
			Quantity:          it.quantity,
			LowStockThreshold: it.threshold,
		})
		if err != nil {
			return false, fmt.Errorf("seed: ítem %s: %w", it.code, err)
		}
	}
	log.Info().
		Int("categories", len(categories)).
		Int("units", len(units)).
		Int("vendors", len(vendors)).
		Int("items", len(items)).
		Msg("seed: catálogo cargado")
	return true, nil
}
