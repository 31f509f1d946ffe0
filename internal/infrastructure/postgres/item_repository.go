package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
	"github.com/jhoicas/inventory-service/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con categoría y unidad, y LEFT JOIN con proveedor.
type ItemRepo struct {
	db Querier
}

// NewItemRepository construye el adaptador (pool o tx).
func NewItemRepository(db Querier) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemSelect = `
	SELECT i.item_id, i.item_code, i.name, i.description, i.category_id, i.vendor_id,
	       i.unit_of_measure, i.quantity, i.low_stock_threshold, i.created_at, i.updated_at,
	       c.category_id, c.name, c.description, c.created_at, c.updated_at,
	       v.vendor_id, v.name, v.description, v.created_at, v.updated_at,
	       u.uom_id, u.name, u.abbreviation, u.description, u.created_at, u.updated_at
	FROM items i
	JOIN item_categories c ON c.category_id = i.category_id
	LEFT JOIN vendors v ON v.vendor_id = i.vendor_id
	JOIN unit_of_measures u ON u.uom_id = i.unit_of_measure`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var (
		it  entity.Item
		cat entity.ItemCategory
		uom entity.UnitOfMeasure

		vendorID          *int64
		vendorName        *string
		vendorDescription *string
		vendorCreatedAt   *time.Time
		vendorUpdatedAt   *time.Time
	)
	err := row.Scan(
		&it.ID, &it.ItemCode, &it.Name, &it.Description, &it.CategoryID, &it.VendorID,
		&it.UnitOfMeasureID, &it.Quantity, &it.LowStockThreshold, &it.CreatedAt, &it.UpdatedAt,
		&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt,
		&vendorID, &vendorName, &vendorDescription, &vendorCreatedAt, &vendorUpdatedAt,
		&uom.ID, &uom.Name, &uom.Abbreviation, &uom.Description, &uom.CreatedAt, &uom.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.Category = &cat
	it.UnitOfMeasure = &uom
	if vendorID != nil {
		it.Vendor = &entity.Vendor{
			ID:          *vendorID,
			Name:        deref(vendorName),
			Description: deref(vendorDescription),
			UpdatedAt:   vendorUpdatedAt,
		}
		if vendorCreatedAt != nil {
			it.Vendor.CreatedAt = *vendorCreatedAt
		}
	}
	return &it, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Create inserta el ítem y completa ID y CreatedAt. No llena las referencias.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO items (item_code, name, description, category_id, vendor_id,
		                   unit_of_measure, quantity, low_stock_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING item_id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		it.ItemCode, it.Name, it.Description, it.CategoryID, it.VendorID,
		it.UnitOfMeasureID, it.Quantity, it.LowStockThreshold,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
	return translate("insert item", err)
}

// GetByID obtiene un ítem con sus referencias. (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, itemSelect+` WHERE i.item_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get item", err)
	}
	return it, nil
}

// GetForUpdate bloquea la fila del ítem. Solo la fila propia: no llena referencias.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	query := `
		SELECT item_id, item_code, name, description, category_id, vendor_id,
		       unit_of_measure, quantity, low_stock_threshold, created_at, updated_at
		FROM items WHERE item_id = $1
		FOR UPDATE`
	var it entity.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.ItemCode, &it.Name, &it.Description, &it.CategoryID, &it.VendorID,
		&it.UnitOfMeasureID, &it.Quantity, &it.LowStockThreshold, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get item for update", err)
	}
	return &it, nil
}

// Update reescribe todas las columnas editables y sella updated_at.
func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	query := `
		UPDATE items SET
			item_code = $2, name = $3, description = $4, category_id = $5, vendor_id = $6,
			unit_of_measure = $7, quantity = $8, low_stock_threshold = $9, updated_at = now()
		WHERE item_id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		it.ID, it.ItemCode, it.Name, it.Description, it.CategoryID, it.VendorID,
		it.UnitOfMeasureID, it.Quantity, it.LowStockThreshold,
	).Scan(&it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return translate("update item", err)
}

// DeductQuantity descuenta n solo si alcanza (UPDATE condicional).
// Sin filas afectadas distingue entre ítem inexistente y stock insuficiente.
func (r *ItemRepo) DeductQuantity(ctx context.Context, id, n int64) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE items SET quantity = quantity - $2, updated_at = now()
		WHERE item_id = $1 AND quantity >= $2`, id, n)
	if err != nil {
		return translate("deduct item quantity", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE item_id = $1)`, id).Scan(&exists); err != nil {
		return translate("deduct item quantity", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientStock
}

func (r *ItemRepo) List(ctx context.Context, plan listing.Plan) ([]*entity.Item, error) {
	order, args := orderClause("i", plan, 1)
	return r.query(ctx, "list items", itemSelect+order, args...)
}

// ListLowStock ítems con quantity < low_stock_threshold.
func (r *ItemRepo) ListLowStock(ctx context.Context, plan listing.Plan) ([]*entity.Item, error) {
	order, args := orderClause("i", plan, 1)
	return r.query(ctx, "list low stock items",
		itemSelect+` WHERE i.quantity < i.low_stock_threshold`+order, args...)
}

func (r *ItemRepo) query(ctx context.Context, op, sql string, args ...any) ([]*entity.Item, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, translate(op, err)
		}
		list = append(list, it)
	}
	return list, translate(op, rows.Err())
}

func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		return translate("delete item", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
