package dto

import (
	"time"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/pkg/optional"
)

// CreateItemCategoryRequest entrada para crear una categoría.
type CreateItemCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"required,min=1,max=255"`
}

// UpdateItemCategoryRequest entrada para actualizar una categoría. Solo se tocan los campos enviados.
type UpdateItemCategoryRequest struct {
	Name        optional.Value[string] `json:"name" validate:"omitempty,min=1,max=50"`
	Description optional.Value[string] `json:"description" validate:"omitempty,min=1,max=255"`
}

// NullFields campos enviados en null que no admiten null.
func (r UpdateItemCategoryRequest) NullFields() []string {
	return nullFields(map[string]nullable{"name": r.Name, "description": r.Description})
}

// ToPatch convierte la entrada en el patch de dominio.
func (r UpdateItemCategoryRequest) ToPatch() entity.ItemCategoryPatch {
	return entity.ItemCategoryPatch{Name: r.Name, Description: r.Description}
}

// ItemCategoryResponse salida de una categoría.
type ItemCategoryResponse struct {
	CategoryID  int64      `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// ToItemCategoryResponse mapea la entidad a la respuesta.
func ToItemCategoryResponse(c *entity.ItemCategory) *ItemCategoryResponse {
	if c == nil {
		return nil
	}
	return &ItemCategoryResponse{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
