package entity

import (
	"time"

	"github.com/jhoicas/inventory-service/pkg/optional"
)

// Item representa un artículo del inventario.
// Category, Vendor y UnitOfMeasure son referencias de solo lectura que llenan las consultas;
// el ítem no es dueño de ellas.
type Item struct {
	ID                int64
	ItemCode          string // código externo (ej. el de la factura del proveedor)
	Name              string
	Description       *string
	CategoryID        int64
	VendorID          *int64
	UnitOfMeasureID   int64
	Quantity          int64
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         *time.Time

	Category      *ItemCategory
	Vendor        *Vendor
	UnitOfMeasure *UnitOfMeasure
}

// IsLowStock indica si la cantidad cayó por debajo del umbral.
func (i *Item) IsLowStock() bool {
	return i.Quantity < i.LowStockThreshold
}

// CanDeduct indica si hay stock suficiente para descontar n unidades.
func (i *Item) CanDeduct(n int64) bool {
	return n <= i.Quantity
}

// ItemPatch campos enviados en una actualización parcial.
// Description y VendorID aceptan null explícito (limpian la columna).
type ItemPatch struct {
	ItemCode          optional.Value[string]
	Name              optional.Value[string]
	Description       optional.Value[string]
	CategoryID        optional.Value[int64]
	VendorID          optional.Value[int64]
	UnitOfMeasureID   optional.Value[int64]
	Quantity          optional.Value[int64]
	LowStockThreshold optional.Value[int64]
}

// Apply sobrescribe solo los campos presentes en p. Las referencias cargadas
// dejan de ser válidas si cambia su FK, por eso se descartan.
func (i *Item) Apply(p ItemPatch) {
	if v, ok := p.ItemCode.Get(); ok {
		i.ItemCode = v
	}
	if v, ok := p.Name.Get(); ok {
		i.Name = v
	}
	if p.Description.IsSet() {
		i.Description = p.Description.Ptr()
	}
	if v, ok := p.CategoryID.Get(); ok && v != i.CategoryID {
		i.CategoryID = v
		i.Category = nil
	}
	if p.VendorID.IsSet() {
		i.VendorID = p.VendorID.Ptr()
		i.Vendor = nil
	}
	if v, ok := p.UnitOfMeasureID.Get(); ok && v != i.UnitOfMeasureID {
		i.UnitOfMeasureID = v
		i.UnitOfMeasure = nil
	}
	if v, ok := p.Quantity.Get(); ok {
		i.Quantity = v
	}
	if v, ok := p.LowStockThreshold.Get(); ok {
		i.LowStockThreshold = v
	}
}
