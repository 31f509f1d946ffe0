package usecase

import (
	"context"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/application/inventory"
	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
	"github.com/jhoicas/inventory-service/internal/domain/repository"
)

const entityItem = "ítem"

// ItemUseCase casos de uso de ítems: CRUD, stock bajo y descuento de cantidad.
type ItemUseCase struct {
	repo   repository.ItemRepository
	tx     inventory.TxRunner
	deduct *inventory.DeductQuantityUseCase
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, tx inventory.TxRunner) *ItemUseCase {
	return &ItemUseCase{
		repo:   repo,
		tx:     tx,
		deduct: inventory.NewDeductQuantityUseCase(tx),
	}
}

// Create verifica las referencias y crea el ítem en la misma transacción.
// Una referencia inexistente corta con *domain.ReferenceError sin insertar nada.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := &entity.Item{
		ItemCode:          in.ItemCode,
		Name:              in.Name,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		VendorID:          in.VendorID,
		UnitOfMeasureID:   in.UnitOfMeasure,
		Quantity:          in.Quantity,
		LowStockThreshold: in.LowStockThreshold,
	}
	var out *entity.Item
	err := uc.tx.Run(ctx, func(repos inventory.Repositories) error {
		refs := inventory.ItemReferences{
			CategoryID:      item.CategoryID,
			VendorID:        item.VendorID,
			UnitOfMeasureID: item.UnitOfMeasureID,
		}
		if err := inventory.CheckItemReferences(ctx, repos, refs); err != nil {
			return err
		}
		if err := repos.Items.Create(ctx, item); err != nil {
			return err
		}
		var err error
		out, err = repos.Items.GetByID(ctx, item.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(out), nil
}

// GetByID obtiene un ítem con sus referencias embebidas.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewNotFound(entityItem, id)
	}
	return dto.ToItemResponse(item), nil
}

// List lista ítems según el plan derivado de q.
func (uc *ItemUseCase) List(ctx context.Context, q dto.ListQuery) ([]dto.ItemResponse, error) {
	rows, err := uc.repo.List(ctx, planFor(q, listing.ItemColumns))
	if err != nil {
		return nil, err
	}
	return mapAll(rows, dto.ToItemResponse), nil
}

// ListLowStock lista los ítems con quantity < low_stock_threshold.
func (uc *ItemUseCase) ListLowStock(ctx context.Context, q dto.ListQuery) ([]dto.ItemResponse, error) {
	rows, err := uc.repo.ListLowStock(ctx, planFor(q, listing.ItemColumns))
	if err != nil {
		return nil, err
	}
	return mapAll(rows, dto.ToItemResponse), nil
}

// Update aplica los campos presentes. Las FKs modificadas las valida el almacén.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	var out *entity.Item
	err := uc.tx.Run(ctx, func(repos inventory.Repositories) error {
		item, err := repos.Items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound(entityItem, id)
		}
		item.Apply(in.ToPatch())
		if err := repos.Items.Update(ctx, item); err != nil {
			return err
		}
		out, err = repos.Items.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(out), nil
}

// Delete elimina un ítem.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), entityItem, id)
}

// DeductQuantity descuenta n unidades del ítem. Ver inventory.DeductQuantityUseCase.
func (uc *ItemUseCase) DeductQuantity(ctx context.Context, id, n int64) (*dto.ItemResponse, error) {
	item, err := uc.deduct.Deduct(ctx, id, n)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// HasItems indica si ya hay al menos un ítem (lo usa el seed).
func (uc *ItemUseCase) HasItems(ctx context.Context) (bool, error) {
	one := 1
	rows, err := uc.repo.List(ctx, listing.Plan{Column: listing.ItemID, Ascending: true, Limit: &one})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
