package dto

import (
	"time"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/pkg/optional"
)

// CreateVendorRequest entrada para crear un proveedor.
type CreateVendorRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=255"`
}

// UpdateVendorRequest entrada para actualizar un proveedor.
type UpdateVendorRequest struct {
	Name        optional.Value[string] `json:"name" validate:"omitempty,min=1,max=100"`
	Description optional.Value[string] `json:"description" validate:"omitempty,min=1,max=255"`
}

// NullFields campos enviados en null que no admiten null.
func (r UpdateVendorRequest) NullFields() []string {
	return nullFields(map[string]nullable{"name": r.Name, "description": r.Description})
}

// ToPatch convierte la entrada en el patch de dominio.
func (r UpdateVendorRequest) ToPatch() entity.VendorPatch {
	return entity.VendorPatch{Name: r.Name, Description: r.Description}
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	VendorID    int64      `json:"vendor_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// ToVendorResponse mapea la entidad a la respuesta.
func ToVendorResponse(v *entity.Vendor) *VendorResponse {
	if v == nil {
		return nil
	}
	return &VendorResponse{
		VendorID:    v.ID,
		Name:        v.Name,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
