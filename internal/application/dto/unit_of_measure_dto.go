package dto

import (
	"time"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/pkg/optional"
)

// CreateUnitOfMeasureRequest entrada para crear una unidad de medida.
type CreateUnitOfMeasureRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=50"`
	Abbreviation string `json:"abbreviation" validate:"required,min=1,max=10"`
	Description  string `json:"description" validate:"required,min=1,max=255"`
}

// UpdateUnitOfMeasureRequest entrada para actualizar una unidad de medida.
type UpdateUnitOfMeasureRequest struct {
	Name         optional.Value[string] `json:"name" validate:"omitempty,min=1,max=50"`
	Abbreviation optional.Value[string] `json:"abbreviation" validate:"omitempty,min=1,max=10"`
	Description  optional.Value[string] `json:"description" validate:"omitempty,min=1,max=255"`
}

// NullFields campos enviados en null que no admiten null.
func (r UpdateUnitOfMeasureRequest) NullFields() []string {
	return nullFields(map[string]nullable{
		"name":         r.Name,
		"abbreviation": r.Abbreviation,
		"description":  r.Description,
	})
}

// ToPatch convierte la entrada en el patch de dominio.
func (r UpdateUnitOfMeasureRequest) ToPatch() entity.UnitOfMeasurePatch {
	return entity.UnitOfMeasurePatch{
		Name:         r.Name,
		Abbreviation: r.Abbreviation,
		Description:  r.Description,
	}
}

// UnitOfMeasureResponse salida de una unidad de medida.
type UnitOfMeasureResponse struct {
	UomID        int64      `json:"uom_id"`
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation"`
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// ToUnitOfMeasureResponse mapea la entidad a la respuesta.
func ToUnitOfMeasureResponse(u *entity.UnitOfMeasure) *UnitOfMeasureResponse {
	if u == nil {
		return nil
	}
	return &UnitOfMeasureResponse{
		UomID:        u.ID,
		Name:         u.Name,
		Abbreviation: u.Abbreviation,
		Description:  u.Description,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
