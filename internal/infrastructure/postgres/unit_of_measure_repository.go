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

var _ repository.UnitOfMeasureRepository = (*UnitOfMeasureRepo)(nil)

// UnitOfMeasureRepo implementación del puerto UnitOfMeasureRepository sobre PostgreSQL.
type UnitOfMeasureRepo struct {
	db Querier
}

// NewUnitOfMeasureRepository construye el adaptador (pool o tx).
func NewUnitOfMeasureRepository(db Querier) *UnitOfMeasureRepo {
	return &UnitOfMeasureRepo{db: db}
}

const uomColumns = `uom_id, name, abbreviation, description, created_at, updated_at`

func scanUnitOfMeasure(row pgx.Row) (*entity.UnitOfMeasure, error) {
	var u entity.UnitOfMeasure
	if err := row.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.Description, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnitOfMeasureRepo) Create(ctx context.Context, u *entity.UnitOfMeasure) error {
	query := `
		INSERT INTO unit_of_measures (name, abbreviation, description)
		VALUES ($1, $2, $3)
		RETURNING uom_id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, u.Name, u.Abbreviation, u.Description).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return translate("insert unit of measure", err)
}

// GetByID obtiene una unidad por ID. (nil, nil) si no existe.
func (r *UnitOfMeasureRepo) GetByID(ctx context.Context, id int64) (*entity.UnitOfMeasure, error) {
	u, err := scanUnitOfMeasure(r.db.QueryRow(ctx, `SELECT `+uomColumns+` FROM unit_of_measures WHERE uom_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get unit of measure", err)
	}
	return u, nil
}

func (r *UnitOfMeasureRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM unit_of_measures WHERE uom_id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, translate("exists unit of measure", err)
	}
	return ok, nil
}

func (r *UnitOfMeasureRepo) Update(ctx context.Context, u *entity.UnitOfMeasure) error {
	query := `
		UPDATE unit_of_measures SET name = $2, abbreviation = $3, description = $4, updated_at = now()
		WHERE uom_id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, u.ID, u.Name, u.Abbreviation, u.Description).Scan(&u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate("update unit of measure", err)
}

func (r *UnitOfMeasureRepo) List(ctx context.Context, plan listing.Plan) ([]*entity.UnitOfMeasure, error) {
	order, args := orderClause("", plan, 1)
	rows, err := r.db.Query(ctx, `SELECT `+uomColumns+` FROM unit_of_measures`+order, args...)
	if err != nil {
		return nil, translate("list units of measure", err)
	}
	defer rows.Close()

	var list []*entity.UnitOfMeasure
	for rows.Next() {
		u, err := scanUnitOfMeasure(rows)
		if err != nil {
			return nil, translate("scan unit of measure", err)
		}
		list = append(list, u)
	}
	return list, translate("list units of measure", rows.Err())
}

func (r *UnitOfMeasureRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM unit_of_measures WHERE uom_id = $1`, id)
	if err != nil {
		return translate("delete unit of measure", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
