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

var _ repository.ItemCategoryRepository = (*ItemCategoryRepo)(nil)

// ItemCategoryRepo implementación del puerto ItemCategoryRepository sobre PostgreSQL.
type ItemCategoryRepo struct {
	db Querier
}

// NewItemCategoryRepository construye el adaptador (pool o tx).
func NewItemCategoryRepository(db Querier) *ItemCategoryRepo {
	return &ItemCategoryRepo{db: db}
}

const categoryColumns = `category_id, name, description, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.ItemCategory, error) {
	var c entity.ItemCategory
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta la categoría y completa ID y CreatedAt.
func (r *ItemCategoryRepo) Create(ctx context.Context, c *entity.ItemCategory) error {
	query := `
		INSERT INTO item_categories (name, description)
		VALUES ($1, $2)
		RETURNING category_id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, c.Name, c.Description).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translate("insert item category", err)
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *ItemCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.ItemCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM item_categories WHERE category_id = $1`
	c, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get item category", err)
	}
	return c, nil
}

func (r *ItemCategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM item_categories WHERE category_id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, translate("exists item category", err)
	}
	return ok, nil
}

// Update guarda nombre y descripción y sella updated_at.
func (r *ItemCategoryRepo) Update(ctx context.Context, c *entity.ItemCategory) error {
	query := `
		UPDATE item_categories SET name = $2, description = $3, updated_at = now()
		WHERE category_id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, c.ID, c.Name, c.Description).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate("update item category", err)
}

func (r *ItemCategoryRepo) List(ctx context.Context, plan listing.Plan) ([]*entity.ItemCategory, error) {
	order, args := orderClause("", plan, 1)
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM item_categories`+order, args...)
	if err != nil {
		return nil, translate("list item categories", err)
	}
	defer rows.Close()

	var list []*entity.ItemCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, translate("scan item category", err)
		}
		list = append(list, c)
	}
	return list, translate("list item categories", rows.Err())
}

// Delete elimina la categoría. domain.ErrNotFound si no existía.
func (r *ItemCategoryRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM item_categories WHERE category_id = $1`, id)
	if err != nil {
		return translate("delete item category", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
