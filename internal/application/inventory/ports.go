package inventory

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/domain/repository"
)

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	Categories     repository.ItemCategoryRepository
	Vendors        repository.VendorRepository
	UnitsOfMeasure repository.UnitOfMeasureRepository
	Items          repository.ItemRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}
