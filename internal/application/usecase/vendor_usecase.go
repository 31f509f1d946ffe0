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

const entityVendor = "proveedor"

// VendorUseCase casos de uso CRUD para proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
	tx   inventory.TxRunner
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository, tx inventory.TxRunner) *VendorUseCase {
	return &VendorUseCase{repo: repo, tx: tx}
}

// Create crea un proveedor. Un nombre repetido llega como *domain.ConstraintError.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	v := &entity.Vendor{Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return dto.ToVendorResponse(v), nil
}

// GetByID obtiene un proveedor; *domain.NotFoundError si no existe.
func (uc *VendorUseCase) GetByID(ctx context.Context, id int64) (*dto.VendorResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NewNotFound(entityVendor, id)
	}
	return dto.ToVendorResponse(v), nil
}

// List lista proveedores según el plan derivado de q.
func (uc *VendorUseCase) List(ctx context.Context, q dto.ListQuery) ([]dto.VendorResponse, error) {
	rows, err := uc.repo.List(ctx, planFor(q, listing.VendorColumns))
	if err != nil {
		return nil, err
	}
	return mapAll(rows, dto.ToVendorResponse), nil
}

// Update aplica los campos presentes y devuelve la fila releída.
func (uc *VendorUseCase) Update(ctx context.Context, id int64, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	var out *entity.Vendor
	err := uc.tx.Run(ctx, func(repos inventory.Repositories) error {
		v, err := repos.Vendors.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewNotFound(entityVendor, id)
		}
		v.Apply(in.ToPatch())
		if err := repos.Vendors.Update(ctx, v); err != nil {
			return err
		}
		out, err = repos.Vendors.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.ToVendorResponse(out), nil
}

// Delete elimina un proveedor. Si hay ítems que lo usan el almacén lo rechaza.
func (uc *VendorUseCase) Delete(ctx context.Context, id int64) error {
	return notFoundAs(uc.repo.Delete(ctx, id), entityVendor, id)
}
