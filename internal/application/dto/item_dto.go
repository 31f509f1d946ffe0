package dto

import (
	"time"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/pkg/optional"
)

// CreateItemRequest entrada para crear un ítem.
// UnitOfMeasure es obligatorio: la columna no admite null.
type CreateItemRequest struct {
	ItemCode          string  `json:"item_code" validate:"required,min=1,max=20"`
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	Description       *string `json:"description" validate:"omitempty,max=255"`
	CategoryID        int64   `json:"category_id" validate:"required,gt=0"`
	VendorID          *int64  `json:"vendor_id" validate:"omitempty,gt=0"`
	UnitOfMeasure     int64   `json:"unit_of_measure" validate:"required,gt=0"`
	Quantity          int64   `json:"quantity" validate:"gte=0"`
	LowStockThreshold int64   `json:"low_stock_threshold" validate:"gte=0"`
}

// UpdateItemRequest entrada para actualizar un ítem. description y vendor_id aceptan null.
type UpdateItemRequest struct {
	ItemCode          optional.Value[string] `json:"item_code" validate:"omitempty,min=1,max=20"`
	Name              optional.Value[string] `json:"name" validate:"omitempty,min=1,max=100"`
	Description       optional.Value[string] `json:"description" validate:"omitempty,max=255"`
	CategoryID        optional.Value[int64]  `json:"category_id" validate:"omitempty,gt=0"`
	VendorID          optional.Value[int64]  `json:"vendor_id" validate:"omitempty,gt=0"`
	UnitOfMeasure     optional.Value[int64]  `json:"unit_of_measure" validate:"omitempty,gt=0"`
	Quantity          optional.Value[int64]  `json:"quantity" validate:"omitempty,gte=0"`
	LowStockThreshold optional.Value[int64]  `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

// NullFields campos enviados en null que no admiten null.
func (r UpdateItemRequest) NullFields() []string {
	return nullFields(map[string]nullable{
		"item_code":           r.ItemCode,
		"name":                r.Name,
		"category_id":         r.CategoryID,
		"unit_of_measure":     r.UnitOfMeasure,
		"quantity":            r.Quantity,
		"low_stock_threshold": r.LowStockThreshold,
	})
}

// ToPatch convierte la entrada en el patch de dominio.
func (r UpdateItemRequest) ToPatch() entity.ItemPatch {
	return entity.ItemPatch{
		ItemCode:          r.ItemCode,
		Name:              r.Name,
		Description:       r.Description,
		CategoryID:        r.CategoryID,
		VendorID:          r.VendorID,
		UnitOfMeasureID:   r.UnitOfMeasure,
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// DeductQuery query string de PATCH /items/:id.
type DeductQuery struct {
	ChangeQuantity int64 `query:"change_quantity" validate:"required,gt=0"`
}

// ItemResponse salida de un ítem con sus referencias embebidas.
type ItemResponse struct {
	ItemID            int64                  `json:"item_id"`
	ItemCode          string                 `json:"item_code"`
	Name              string                 `json:"name"`
	Description       *string                `json:"description"`
	CategoryID        int64                  `json:"category_id"`
	VendorID          *int64                 `json:"vendor_id"`
	UnitOfMeasure     int64                  `json:"unit_of_measure"`
	Quantity          int64                  `json:"quantity"`
	LowStockThreshold int64                  `json:"low_stock_threshold"`
	ItemCategory      *ItemCategoryResponse  `json:"item_category"`
	Vendor            *VendorResponse        `json:"vendor"`
	Uom               *UnitOfMeasureResponse `json:"uom"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         *time.Time             `json:"updated_at"`
}

// ToItemResponse mapea la entidad a la respuesta.
func ToItemResponse(i *entity.Item) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ItemID:            i.ID,
		ItemCode:          i.ItemCode,
		Name:              i.Name,
		Description:       i.Description,
		CategoryID:        i.CategoryID,
		VendorID:          i.VendorID,
		UnitOfMeasure:     i.UnitOfMeasureID,
		Quantity:          i.Quantity,
		LowStockThreshold: i.LowStockThreshold,
		ItemCategory:      ToItemCategoryResponse(i.Category),
		Vendor:            ToVendorResponse(i.Vendor),
		Uom:               ToUnitOfMeasureResponse(i.UnitOfMeasure),
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}
