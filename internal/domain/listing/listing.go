// Package listing convierte parámetros de listado no confiables (limit, order_by, ascending)
// en un plan de consulta seguro. Solo columnas de una lista blanca pueden llegar a la capa SQL.
package listing

import (
	"golang.org/x/text/cases"
)

// Column es el nombre de una columna ordenable ya validada.
type Column string

// Params son los parámetros tal como llegan del cliente.
type Params struct {
	Limit     *int
	OrderBy   string
	Ascending *bool
}

// Plan es el plan de consulta resultante: columna, dirección y tope opcional de filas.
type Plan struct {
	Column    Column
	Ascending bool
	Limit     *int
}

// AllowList es la lista blanca de columnas ordenables de una entidad.
// Se construye una sola vez por entidad.
type AllowList struct {
	identity Column
	columns  map[string]Column
}

// NewAllowList construye la lista blanca. La columna identidad siempre es ordenable.
func NewAllowList(identity Column, columns ...Column) AllowList {
	m := make(map[string]Column, len(columns)+1)
	m[fold(string(identity))] = identity
	for _, c := range columns {
		m[fold(string(c))] = c
	}
	return AllowList{identity: identity, columns: m}
}

// Identity devuelve la columna identidad (orden por defecto).
func (a AllowList) Identity() Column { return a.identity }

// Resolve devuelve la columna permitida para name, o la identidad si no hay coincidencia.
func (a AllowList) Resolve(name string) Column {
	if c, ok := a.columns[fold(name)]; ok {
		return c
	}
	return a.identity
}

// Columns devuelve las columnas permitidas (sin orden garantizado).
func (a AllowList) Columns() []Column {
	out := make([]Column, 0, len(a.columns))
	for _, c := range a.columns {
		out = append(out, c)
	}
	return out
}

// Build produce el plan. Nunca falla: un order_by desconocido cae a la columna identidad.
func Build(p Params, allow AllowList) Plan {
	plan := Plan{
		Column:    allow.Resolve(p.OrderBy),
		Ascending: true,
	}
	if p.Ascending != nil {
		plan.Ascending = *p.Ascending
	}
	if p.Limit != nil {
		limit := *p.Limit
		plan.Limit = &limit
	}
	return plan
}

func fold(s string) string {
	return cases.Fold().String(s)
}
