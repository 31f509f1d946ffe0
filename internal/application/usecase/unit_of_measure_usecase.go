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

const entityUnitOfMeasure = "unidad de medida"

// UnitOfMeasureUseCase casos de uso CRUD para unidades de medida.
type UnitOfMeasureUseCase struct {
	repo repository.UnitOfMeasureRepository
	tx   inventory.TxRunner
}

// NewUnitOfMeasureUseCase construye el caso de uso.
func NewUnitOfMeasureUseCase(repo repository.UnitOfMeasureRepository, tx inventory.TxRunner) *UnitOfMeasureUseCase {
	return &UnitOfMeasureUseCase{repo: repo, tx: tx}
}

// Create crea una unidad. Nombre y abreviatura son únicos.
func (uc *UnitOfMeasureUseCase) Create(ctx context.Context, in dto.CreateUnitOfMeasureRequest) (*dto.UnitOfMeasureResponse, error) {
	u := &entity.UnitOfMeasure{Name: in.Name, Abbreviation: in.Abbreviation, Description: in.Description}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return dto.ToUnitOfMeasureResponse(u), nil
}

// GetByID obtiene una unidad de medida.
func (uc *UnitOfMeasureUseCase) GetByID(ctx context.Context, id int64) (*dto.UnitOfMeasureResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound(entityUnitOfMeasure, id)
	}
	return dto.ToUnitOfMeasureResponse(u), nil
}

func (uc *UnitOfMeasureUseCase) List(ctx context.Context, q dto.ListQuery) ([]dto.UnitOfMeasureResponse, error) {
	rows, err := uc.repo.List(ctx, planFor(q, listing.UnitOfMeasureColumns))
	if err != nil {
		return nil, err
	}
	return mapAll(rows, dto.ToUnitOfMeasureResponse), nil
}

// Update aplica los campos presentes y devuelve la fila releída.
func (uc *UnitOfMeasureUseCase) Update(ctx context.Context, id int64, in dto.UpdateUnitOfMeasureRequest) (*dto.UnitOfMeasureResponse, error) {
	var out *entity.UnitOfMeasure
	err := uc.tx.Run(ctx, func(repos inventory.Repositories) error {
		u, err := repos.UnitsOfMeasure.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.NewNotFound(entityUnitOfMeasure, id)
		}
		u.Apply(in.ToPatch())
		if err := repos.UnitsOfMeasure.Update(ctx, u); err != nil {
			return err
		}
		out, err = repos.UnitsOfMeasure.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ToUnitOfMeasureResponse(out), nil
}

func (uc *UnitOfMeasureUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), entityUnitOfMeasure, id)
}
