package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-service/internal/domain"
)

// ItemReferences son las FKs que trae un ítem nuevo.
type ItemReferences struct {
	CategoryID      int64
	VendorID        *int64
	UnitOfMeasureID int64
}

// CheckItemReferences verifica que categoría, proveedor (si viene) y unidad de medida existan,
// en ese orden. El primer faltante corta con *domain.ReferenceError.
// Debe llamarse con repositorios de la misma transacción que hará el INSERT.
func CheckItemReferences(ctx context.Context, repos Repositories, refs ItemReferences) error {
	ok, err := repos.Categories.Exists(ctx, refs.CategoryID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return &domain.ReferenceError{Reference: "categoría", Field: "category_id", Value: refs.CategoryID}
	}

	if refs.VendorID != nil {
		ok, err = repos.Vendors.Exists(ctx, *refs.VendorID)
		if err != nil {
			return fmt.Errorf("check vendor: %w", err)
		}
		if !ok {
			return &domain.ReferenceError{Reference: "proveedor", Field: "vendor_id", Value: *refs.VendorID}
		}
	}

	ok, err = repos.UnitsOfMeasure.Exists(ctx, refs.UnitOfMeasureID)
	if err != nil {
		return fmt.Errorf("check unit of measure: %w", err)
	}
	if !ok {
		return &domain.ReferenceError{Reference: "unidad de medida", Field: "unit_of_measure", Value: refs.UnitOfMeasureID}
	}
	return nil
}
