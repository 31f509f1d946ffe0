package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConstraint          = errors.New("violación de restricción")
	ErrUnresolvedReference = errors.New("referencia no encontrada")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)

// Tipos de restricción que reporta el almacén.
const (
	ConstraintUnique     = "unique"
	ConstraintForeignKey = "foreign_key"
	ConstraintNotNull    = "not_null"
	ConstraintCheck      = "check"
)

// ConstraintError es una violación de unicidad / FK / check detectada por el almacén.
// Detail lleva la descripción nativa del almacén, apta para el cliente.
type ConstraintError struct {
	Kind       string
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	return e.Detail
}

func (e *ConstraintError) Unwrap() error { return ErrConstraint }

// ReferenceError indica que una FK de Item no apunta a ninguna fila.
type ReferenceError struct {
	Reference string // category, vendor, unit of measure
	Field     string // category_id, vendor_id, unit_of_measure
	Value     int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Reference, e.Value)
}

func (e *ReferenceError) Unwrap() error { return ErrUnresolvedReference }

// NotFoundError nombra la entidad y la identidad que no existe.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con id %d no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}
