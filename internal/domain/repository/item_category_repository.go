package repository

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// ItemCategoryRepository define el puerto de persistencia para ItemCategory (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve domain.ErrNotFound.
type ItemCategoryRepository interface {
	Create(ctx context.Context, category *entity.ItemCategory) error
	GetByID(ctx context.Context, id int64) (*entity.ItemCategory, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, category *entity.ItemCategory) error
	List(ctx context.Context, plan listing.Plan) ([]*entity.ItemCategory, error)
	Delete(ctx context.Context, id int64) error
}
