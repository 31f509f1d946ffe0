// Package memstore es un almacén en memoria para pruebas de casos de uso.
// Aplica las mismas reglas que el esquema Postgres: unicidad, FKs, checks y el plan de listado.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/inventory-service/internal/application/inventory"
	"github.com/jhoicas/inventory-service/internal/domain"
	"github.com/jhoicas/inventory-service/internal/domain/entity"
	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// Store guarda las cuatro tablas. Es seguro para uso concurrente.
type Store struct {
	mu   sync.Mutex
	data tables
	now  func() time.Time

	// FailWith, si no es nil, hace fallar toda operación con ese error (simula caída del almacén).
	FailWith error
}

// sequences son los contadores de identidad, uno por tabla como los BIGSERIAL.
type sequences struct {
	categories, vendors, uoms, items int64
}

type tables struct {
	seq        sequences
	categories map[int64]entity.ItemCategory
	vendors    map[int64]entity.Vendor
	uoms       map[int64]entity.UnitOfMeasure
	items      map[int64]entity.Item
}

func (t tables) clone() tables {
	out := tables{
		seq:        t.seq,
		categories: make(map[int64]entity.ItemCategory, len(t.categories)),
		vendors:    make(map[int64]entity.Vendor, len(t.vendors)),
		uoms:       make(map[int64]entity.UnitOfMeasure, len(t.uoms)),
		items:      make(map[int64]entity.Item, len(t.items)),
	}
	for k, v := range t.categories {
		out.categories[k] = v
	}
	for k, v := range t.vendors {
		out.vendors[k] = v
	}
	for k, v := range t.uoms {
		out.uoms[k] = v
	}
	for k, v := range t.items {
		out.items[k] = v
	}
	return out
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		data: tables{}.clone(),
		now:  time.Now,
	}
}

// Repositories devuelve repositorios fuera de transacción.
func (s *Store) Repositories() inventory.Repositories {
	return s.repos(false)
}

// Run implementa inventory.TxRunner: si fn falla, se restaura el estado previo.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	snapshot := s.data.clone()
	if err := fn(s.repos(true)); err != nil {
		s.data = snapshot
		return err
	}
	return ctx.Err()
}

func (s *Store) repos(inTx bool) inventory.Repositories {
	return inventory.Repositories{
		Categories:     &categoryRepo{s: s, inTx: inTx},
		Vendors:        &vendorRepo{s: s, inTx: inTx},
		UnitsOfMeasure: &uomRepo{s: s, inTx: inTx},
		Items:          &itemRepo{s: s, inTx: inTx},
	}
}

// do ejecuta fn con el candado tomado salvo que ya estemos dentro de Run.
func (s *Store) do(inTx bool, fn func() error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if s.FailWith != nil {
		return s.FailWith
	}
	return fn()
}

func nextID(seq *int64) int64 {
	*seq++
	return *seq
}

func (s *Store) stamp() *time.Time {
	t := s.now().UTC()
	return &t
}

func uniqueViolation(constraint, detail string) error {
	return &domain.ConstraintError{Kind: domain.ConstraintUnique, Constraint: constraint, Detail: detail}
}

func fkViolation(constraint, detail string) error {
	return &domain.ConstraintError{Kind: domain.ConstraintForeignKey, Constraint: constraint, Detail: detail}
}

func checkViolation(constraint string) error {
	return &domain.ConstraintError{
		Kind:       domain.ConstraintCheck,
		Constraint: constraint,
		Detail:     fmt.Sprintf(`new row violates check constraint "%s"`, constraint),
	}
}

// less compara dos filas según la columna del plan.
type lessFunc[T any] func(a, b T, col listing.Column) bool

// applyPlan ordena y recorta. Los ids desempatan para que el orden sea estable.
func applyPlan[T any](rows []T, plan listing.Plan, less lessFunc[T], id func(T) int64) []T {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if less(a, b, plan.Column) {
			return plan.Ascending
		}
		if less(b, a, plan.Column) {
			return !plan.Ascending
		}
		if plan.Ascending {
			return id(a) < id(b)
		}
		return id(a) > id(b)
	})
	if plan.Limit != nil && *plan.Limit < len(rows) {
		n := *plan.Limit
		if n < 0 {
			n = 0
		}
		rows = rows[:n]
	}
	return rows
}

// lessTime ordena como Postgres: NULL al final en ascendente.
func lessTime(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

func lessString(a, b *string) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}
