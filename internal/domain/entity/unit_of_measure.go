package entity

import (
	"time"

	"github.com/jhoicas/inventory-service/pkg/optional"
)

// UnitOfMeasure unidad de medida (pieza, kilogramo, litro). Name y Abbreviation son únicos.
type UnitOfMeasure struct {
	ID           int64
	Name         string
	Abbreviation string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// UnitOfMeasurePatch campos enviados en una actualización parcial.
type UnitOfMeasurePatch struct {
	Name         optional.Value[string]
	Abbreviation optional.Value[string]
	Description  optional.Value[string]
}

// Apply sobrescribe solo los campos presentes en p.
func (u *UnitOfMeasure) Apply(p UnitOfMeasurePatch) {
	if v, ok := p.Name.Get(); ok {
		u.Name = v
	}
	if v, ok := p.Abbreviation.Get(); ok {
		u.Abbreviation = v
	}
	if v, ok := p.Description.Get(); ok {
		u.Description = v
	}
}
