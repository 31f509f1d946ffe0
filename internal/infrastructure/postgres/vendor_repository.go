package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
	"github.com/jhoicas/inventory-service/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	db Querier
}

// NewVendorRepository construye el adaptador (pool o tx).
func NewVendorRepository(db Querier) *VendorRepo {
	return &VendorRepo{db: db}
}

const vendorColumns = `vendor_id, name, description, created_at, updated_at`

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (name, description)
		VALUES ($1, $2)
		RETURNING vendor_id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, v.Name, v.Description).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	return translate("insert vendor", err)
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id int64) (*entity.Vendor, error) {
	v, err := scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE vendor_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get vendor", err)
	}
	return v, nil
}

func (r *VendorRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vendors WHERE vendor_id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, translate("exists vendor", err)
	}
	return ok, nil
}

func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, description = $3, updated_at = now()
		WHERE vendor_id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, v.ID, v.Name, v.Description).Scan(&v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate("update vendor", err)
}

func (r *VendorRepo) List(ctx context.Context, plan listing.Plan) ([]*entity.Vendor, error) {
	order, args := orderClause("", plan, 1)
	rows, err := r.db.Query(ctx, `SELECT `+vendorColumns+` FROM vendors`+order, args...)
	if err != nil {
		return nil, translate("list vendors", err)
	}
	defer rows.Close()

	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, translate("scan vendor", err)
		}
		list = append(list, v)
	}
	return list, translate("list vendors", rows.Err())
}

func (r *VendorRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1`, id)
	if err != nil {
		return translate("delete vendor", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
