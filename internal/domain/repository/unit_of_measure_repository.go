package repository

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// UnitOfMeasureRepository define el puerto de persistencia para UnitOfMeasure (DIP).
type UnitOfMeasureRepository interface {
	Create(ctx context.Context, uom *entity.UnitOfMeasure) error
	GetByID(ctx context.Context, id int64) (*entity.UnitOfMeasure, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, uom *entity.UnitOfMeasure) error
	List(ctx context.Context, plan listing.Plan) ([]*entity.UnitOfMeasure, error)
	Delete(ctx context.Context, id int64) error
}
