package memstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

type itemRepo struct {
	s    *Store
	inTx bool
}

// validate replica las restricciones del esquema de item. item_code no es único.
func (r *itemRepo) validate(it *entity.Item) error {
	if _, ok := r.s.data.categories[it.CategoryID]; !ok {
		return fkViolation("item_category_id_fkey",
			fmt.Sprintf(`Key (category_id)=(%d) is not present in table "item_category".`, it.CategoryID))
	}
	if it.VendorID != nil {
		if _, ok := r.s.data.vendors[*it.VendorID]; !ok {
			return fkViolation("item_vendor_id_fkey",
				fmt.Sprintf(`Key (vendor_id)=(%d) is not present in table "vendor".`, *it.VendorID))
		}
	}
	if _, ok := r.s.data.uoms[it.UnitOfMeasureID]; !ok {
		return fkViolation("item_unit_of_measure_fkey",
			fmt.Sprintf(`Key (unit_of_measure)=(%d) is not present in table "unit_of_measure".`, it.UnitOfMeasureID))
	}
	if it.Quantity < 0 {
		return checkViolation("item_quantity_check")
	}
	if it.LowStockThreshold < 0 {
		return checkViolation("item_low_stock_threshold_check")
	}
	return nil
}

// hydrate copia la fila y llena las referencias de solo lectura.
func (r *itemRepo) hydrate(it entity.Item) *entity.Item {
	out := it
	if c, ok := r.s.data.categories[it.CategoryID]; ok {
		out.Category = &c
	}
	out.Vendor = nil
	if it.VendorID != nil {
		if v, ok := r.s.data.vendors[*it.VendorID]; ok {
			out.Vendor = &v
		}
	}
	if u, ok := r.s.data.uoms[it.UnitOfMeasureID]; ok {
		out.UnitOfMeasure = &u
	}
	return &out
}

func strip(it entity.Item) entity.Item {
	it.Category, it.Vendor, it.UnitOfMeasure = nil, nil, nil
	return it
}

func (r *itemRepo) Create(_ context.Context, it *entity.Item) error {
	return r.s.do(r.inTx, func() error {
		if err := r.validate(it); err != nil {
			return err
		}
		it.ID = nextID(&r.s.data.seq.items)
		it.CreatedAt = *r.s.stamp()
		it.UpdatedAt = nil
		r.s.data.items[it.ID] = strip(*it)
		return nil
	})
}

func (r *itemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	var out *entity.Item
	err := r.s.do(r.inTx, func() error {
		if it, ok := r.s.data.items[id]; ok {
			out = r.hydrate(it)
		}
		return nil
	})
	return out, err
}

// GetForUpdate no necesita bloqueo extra: Run ya serializa las transacciones.
func (r *itemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *itemRepo) Update(_ context.Context, it *entity.Item) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.items[it.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := r.validate(it); err != nil {
			return err
		}
		it.UpdatedAt = r.s.stamp()
		r.s.data.items[it.ID] = strip(*it)
		return nil
	})
}

func (r *itemRepo) DeductQuantity(_ context.Context, id, n int64) error {
	return r.s.do(r.inTx, func() error {
		it, ok := r.s.data.items[id]
		if !ok {
			return domain.ErrNotFound
		}
		if it.Quantity < n {
			return domain.ErrInsufficientStock
		}
		it.Quantity -= n
		it.UpdatedAt = r.s.stamp()
		r.s.data.items[id] = it
		return nil
	})
}

func (r *itemRepo) list(plan listing.Plan, keep func(entity.Item) bool) ([]*entity.Item, error) {
	var out []*entity.Item
	err := r.s.do(r.inTx, func() error {
		var rows []entity.Item
		for _, it := range r.s.data.items {
			if keep(it) {
				rows = append(rows, it)
			}
		}
		rows = applyPlan(rows, plan, lessItem, func(it entity.Item) int64 { return it.ID })
		out = make([]*entity.Item, len(rows))
		for i, it := range rows {
			out[i] = r.hydrate(it)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itemRepo) List(_ context.Context, plan listing.Plan) ([]*entity.Item, error) {
	return r.list(plan, func(entity.Item) bool { return true })
}

func (r *itemRepo) ListLowStock(_ context.Context, plan listing.Plan) ([]*entity.Item, error) {
	return r.list(plan, func(it entity.Item) bool { return it.IsLowStock() })
}

func (r *itemRepo) Delete(_ context.Context, id int64) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.items[id]; !ok {
			return domain.ErrNotFound
		}
		delete(r.s.data.items, id)
		return nil
	})
}

func lessItem(a, b entity.Item, col listing.Column) bool {
	switch col {
	case listing.ItemCode:
		return a.ItemCode < b.ItemCode
	case listing.ItemName:
		return a.Name < b.Name
	case listing.ItemDescription:
		return lessString(a.Description, b.Description)
	case listing.ItemQuantity:
		return a.Quantity < b.Quantity
	case listing.ItemLowStockThreshold:
		return a.LowStockThreshold < b.LowStockThreshold
	case listing.ItemCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	case listing.ItemUpdatedAt:
		return lessTime(a.UpdatedAt, b.UpdatedAt)
	default:
		return a.ID < b.ID
	}
}
