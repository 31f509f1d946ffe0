package entity

import (
	"time"

	"github.com/jhoicas/inventory-service/pkg/optional"
)

// Vendor proveedor de ítems. Name es único.
type Vendor struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// VendorPatch campos enviados en una actualización parcial.
type VendorPatch struct {
	Name        optional.Value[string]
	Description optional.Value[string]
}

// Apply sobrescribe solo los campos presentes en p.
func (v *Vendor) Apply(p VendorPatch) {
	if s, ok := p.Name.Get(); ok {
		v.Name = s
	}
	if s, ok := p.Description.Get(); ok {
		v.Description = s
	}
}
