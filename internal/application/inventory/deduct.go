package inventory

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
)

// DeductQuantityUseCase descuenta stock de un ítem (salida de inventario).
type DeductQuantityUseCase struct {
	tx TxRunner
}

// NewDeductQuantityUseCase construye el caso de uso.
func NewDeductQuantityUseCase(tx TxRunner) *DeductQuantityUseCase {
	return &DeductQuantityUseCase{tx: tx}
}

// Deduct resta n unidades al ítem id dentro de una transacción con la fila bloqueada.
// Errores: domain.ErrInvalidInput (n <= 0), *domain.NotFoundError, domain.ErrInsufficientStock.
// Si falla no se modifica nada.
func (uc *DeductQuantityUseCase) Deduct(ctx context.Context, id, n int64) (*entity.Item, error) {
	if n <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Item
	err := uc.tx.Run(ctx, func(repos Repositories) error {
		item, err := repos.Items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("ítem", id)
		}
		if !item.CanDeduct(n) {
			return domain.ErrInsufficientStock
		}
		if err := repos.Items.DeductQuantity(ctx, id, n); err != nil {
			return err
		}
		out, err = repos.Items.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
