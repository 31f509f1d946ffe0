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

const entityItemCategory = "categoría"

// ItemCategoryUseCase casos de uso CRUD para categorías de ítems.
type ItemCategoryUseCase struct {
	repo repository.ItemCategoryRepository
	tx   inventory.TxRunner
}

// NewItemCategoryUseCase construye el caso de uso.
func NewItemCategoryUseCase(repo repository.ItemCategoryRepository, tx inventory.TxRunner) *ItemCategoryUseCase {
	return &ItemCategoryUseCase{repo: repo, tx: tx}
}

// Create crea una categoría. Un nombre repetido llega como *domain.ConstraintError.
func (uc *ItemCategoryUseCase) Create(ctx context.Context, in dto.CreateItemCategoryRequest) (*dto.ItemCategoryResponse, error) {
	c := &entity.ItemCategory{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToItemCategoryResponse(c), nil
}

// GetByID obtiene una categoría; *domain.NotFoundError si no existe.
func (uc *ItemCategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemCategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound(entityItemCategory, id)
	}
	return dto.ToItemCategoryResponse(c), nil
}

// List lista categorías según el plan derivado de q.
func (uc *ItemCategoryUseCase) List(ctx context.Context, q dto.ListQuery) ([]dto.ItemCategoryResponse, error) {
	rows, err := uc.repo.List(ctx, planFor(q, listing.ItemCategoryColumns))
	if err != nil {
		return nil, err
	}
	return mapAll(rows, dto.ToItemCategoryResponse), nil
}

// Update aplica los campos presentes y devuelve la fila releída.
func (uc *ItemCategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemCategoryRequest) (*dto.ItemCategoryResponse, error) {
	var out *entity.ItemCategory
	err := uc.tx.Run(ctx, func(repos inventory.Repositories) error {
		c, err := repos.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NewNotFound(entityItemCategory, id)
		}
		c.Apply(in.ToPatch())
		if err := repos.Categories.Update(ctx, c); err != nil {
			return err
		}
		out, err = repos.Categories.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ToItemCategoryResponse(out), nil
}

// Delete elimina una categoría. Si hay ítems que la usan el almacén lo rechaza.
func (uc *ItemCategoryUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), entityItemCategory, id)
}
