package repository

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Las lecturas llenan Category, Vendor y UnitOfMeasure.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// DeductQuantity descuenta n unidades; devuelve domain.ErrInsufficientStock si no alcanzan.
	DeductQuantity(ctx context.Context, id, n int64) error
	List(ctx context.Context, plan listing.Plan) ([]*entity.Item, error)
	ListLowStock(ctx context.Context, plan listing.Plan) ([]*entity.Item, error)
	Delete(ctx context.Context, id int64) error
}
