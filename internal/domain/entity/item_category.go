package entity

import (
	"time"

	"github.com/jhoicas/inventory-service/pkg/optional"
)

// ItemCategory agrupa ítems (Electrónica, Muebles...). Name es único.
type ItemCategory struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time // nil hasta la primera actualización
}

// ItemCategoryPatch campos enviados en una actualización parcial.
type ItemCategoryPatch struct {
	Name        optional.Value[string]
	Description optional.Value[string]
}

// Apply sobrescribe solo los campos presentes en p.
func (c *ItemCategory) Apply(p ItemCategoryPatch) {
	if v, ok := p.Name.Get(); ok {
		c.Name = v
	}
	if v, ok := p.Description.Get(); ok {
		c.Description = v
	}
}
