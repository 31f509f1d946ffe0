package memstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// ─── Categorías ─────────────────────────────────────────────────────────────

type categoryRepo struct {
	s    *Store
	inTx bool
}

func (r *categoryRepo) checkUnique(c *entity.ItemCategory) error {
	for id, other := range r.s.data.categories {
		if id != c.ID && other.Name == c.Name {
			return uniqueViolation("item_category_name_key", fmt.Sprintf("Key (name)=(%s) already exists.", c.Name))
		}
	}
	return nil
}

func (r *categoryRepo) Create(_ context.Context, c *entity.ItemCategory) error {
	return r.s.do(r.inTx, func() error {
		if err := r.checkUnique(c); err != nil {
			return err
		}
		c.ID = nextID(&r.s.data.seq.categories)
		c.CreatedAt = *r.s.stamp()
		c.UpdatedAt = nil
		r.s.data.categories[c.ID] = *c
		return nil
	})
}

func (r *categoryRepo) GetByID(_ context.Context, id int64) (*entity.ItemCategory, error) {
	var out *entity.ItemCategory
	err := r.s.do(r.inTx, func() error {
		if c, ok := r.s.data.categories[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *categoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	c, err := r.GetByID(ctx, id)
	return c != nil, err
}

func (r *categoryRepo) Update(_ context.Context, c *entity.ItemCategory) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.categories[c.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := r.checkUnique(c); err != nil {
			return err
		}
		c.UpdatedAt = r.s.stamp()
		r.s.data.categories[c.ID] = *c
		return nil
	})
}

func (r *categoryRepo) List(_ context.Context, plan listing.Plan) ([]*entity.ItemCategory, error) {
	var rows []entity.ItemCategory
	err := r.s.do(r.inTx, func() error {
		for _, c := range r.s.data.categories {
			rows = append(rows, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rows = applyPlan(rows, plan, func(a, b entity.ItemCategory, col listing.Column) bool {
		switch col {
		case listing.CategoryName:
			return a.Name < b.Name
		case listing.CategoryDescription:
			return a.Description < b.Description
		default:
			return a.ID < b.ID
		}
	}, func(c entity.ItemCategory) int64 { return c.ID })
	return ptrs(rows), nil
}

func (r *categoryRepo) Delete(_ context.Context, id int64) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.categories[id]; !ok {
			return domain.ErrNotFound
		}
		for _, it := range r.s.data.items {
			if it.CategoryID == id {
				return fkViolation("item_category_id_fkey",
					fmt.Sprintf(`Key (category_id)=(%d) is still referenced from table "item".`, id))
			}
		}
		delete(r.s.data.categories, id)
		return nil
	})
}

// ─── Proveedores ────────────────────────────────────────────────────────────

type vendorRepo struct {
	s    *Store
	inTx bool
}

func (r *vendorRepo) checkUnique(v *entity.Vendor) error {
	for id, other := range r.s.data.vendors {
		if id != v.ID && other.Name == v.Name {
			return uniqueViolation("vendor_name_key", fmt.Sprintf("Key (name)=(%s) already exists.", v.Name))
		}
	}
	return nil
}

func (r *vendorRepo) Create(_ context.Context, v *entity.Vendor) error {
	return r.s.do(r.inTx, func() error {
		if err := r.checkUnique(v); err != nil {
			return err
		}
		v.ID = nextID(&r.s.data.seq.vendors)
		v.CreatedAt = *r.s.stamp()
		v.UpdatedAt = nil
		r.s.data.vendors[v.ID] = *v
		return nil
	})
}

func (r *vendorRepo) GetByID(_ context.Context, id int64) (*entity.Vendor, error) {
	var out *entity.Vendor
	err := r.s.do(r.inTx, func() error {
		if v, ok := r.s.data.vendors[id]; ok {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *vendorRepo) Exists(ctx context.Context, id int64) (bool, error) {
	v, err := r.GetByID(ctx, id)
	return v != nil, err
}

func (r *vendorRepo) Update(_ context.Context, v *entity.Vendor) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.vendors[v.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := r.checkUnique(v); err != nil {
			return err
		}
		v.UpdatedAt = r.s.stamp()
		r.s.data.vendors[v.ID] = *v
		return nil
	})
}

func (r *vendorRepo) List(_ context.Context, plan listing.Plan) ([]*entity.Vendor, error) {
	var rows []entity.Vendor
	err := r.s.do(r.inTx, func() error {
		for _, v := range r.s.data.vendors {
			rows = append(rows, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rows = applyPlan(rows, plan, func(a, b entity.Vendor, col listing.Column) bool {
		switch col {
		case listing.VendorName:
			return a.Name < b.Name
		case listing.VendorDescription:
			return a.Description < b.Description
		default:
			return a.ID < b.ID
		}
	}, func(v entity.Vendor) int64 { return v.ID })
	return ptrs(rows), nil
}

func (r *vendorRepo) Delete(_ context.Context, id int64) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.vendors[id]; !ok {
			return domain.ErrNotFound
		}
		for _, it := range r.s.data.items {
			if it.VendorID != nil && *it.VendorID == id {
				return fkViolation("item_vendor_id_fkey",
					fmt.Sprintf(`Key (vendor_id)=(%d) is still referenced from table "item".`, id))
			}
		}
		delete(r.s.data.vendors, id)
		return nil
	})
}

// ─── Unidades de medida ─────────────────────────────────────────────────────

type uomRepo struct {
	s    *Store
	inTx bool
}

func (r *uomRepo) checkUnique(u *entity.UnitOfMeasure) error {
	for id, other := range r.s.data.uoms {
		if id == u.ID {
			continue
		}
		if other.Name == u.Name {
			return uniqueViolation("unit_of_measure_name_key", fmt.Sprintf("Key (name)=(%s) already exists.", u.Name))
		}
		if other.Abbreviation == u.Abbreviation {
			return uniqueViolation("unit_of_measure_abbreviation_key",
				fmt.Sprintf("Key (abbreviation)=(%s) already exists.", u.Abbreviation))
		}
	}
	return nil
}

func (r *uomRepo) Create(_ context.Context, u *entity.UnitOfMeasure) error {
	return r.s.do(r.inTx, func() error {
		if err := r.checkUnique(u); err != nil {
			return err
		}
		u.ID = nextID(&r.s.data.seq.uoms)
		u.CreatedAt = *r.s.stamp()
		u.UpdatedAt = nil
		r.s.data.uoms[u.ID] = *u
		return nil
	})
}

func (r *uomRepo) GetByID(_ context.Context, id int64) (*entity.UnitOfMeasure, error) {
	var out *entity.UnitOfMeasure
	err := r.s.do(r.inTx, func() error {
		if u, ok := r.s.data.uoms[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *uomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	u, err := r.GetByID(ctx, id)
	return u != nil, err
}

func (r *uomRepo) Update(_ context.Context, u *entity.UnitOfMeasure) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.uoms[u.ID]; !ok {
			return domain.ErrNotFound
		}
		if err := r.checkUnique(u); err != nil {
			return err
		}
		u.UpdatedAt = r.s.stamp()
		r.s.data.uoms[u.ID] = *u
		return nil
	})
}

func (r *uomRepo) List(_ context.Context, plan listing.Plan) ([]*entity.UnitOfMeasure, error) {
	var rows []entity.UnitOfMeasure
	err := r.s.do(r.inTx, func() error {
		for _, u := range r.s.data.uoms {
			rows = append(rows, u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rows = applyPlan(rows, plan, func(a, b entity.UnitOfMeasure, col listing.Column) bool {
		switch col {
		case listing.UnitOfMeasureName:
			return a.Name < b.Name
		case listing.UnitOfMeasureAbbreviation:
			return a.Abbreviation < b.Abbreviation
		case listing.UnitOfMeasureDescription:
			return a.Description < b.Description
		default:
			return a.ID < b.ID
		}
	}, func(u entity.UnitOfMeasure) int64 { return u.ID })
	return ptrs(rows), nil
}

func (r *uomRepo) Delete(_ context.Context, id int64) error {
	return r.s.do(r.inTx, func() error {
		if _, ok := r.s.data.uoms[id]; !ok {
			return domain.ErrNotFound
		}
		for _, it := range r.s.data.items {
			if it.UnitOfMeasureID == id {
				return fkViolation("item_unit_of_measure_fkey",
					fmt.Sprintf(`Key (uom_id)=(%d) is still referenced from table "item".`, id))
			}
		}
		delete(r.s.data.uoms, id)
		return nil
	})
}

func ptrs[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
