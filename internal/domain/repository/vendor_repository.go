package repository

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id int64) (*entity.Vendor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	List(ctx context.Context, plan listing.Plan) ([]*entity.Vendor, error)
	Delete(ctx context.Context, id int64) error
}
