package postgres

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-service/internal/domain/listing"
)

// orderClause renderiza ORDER BY / LIMIT para un plan ya validado.
// La columna va citada como identificador y el límite como parámetro $n (n = next).
// Devuelve el fragmento SQL y los argumentos a agregar.
func orderClause(alias string, plan listing.Plan, next int) (string, []any) {
	ident := pgx.Identifier{string(plan.Column)}
	if alias != "" {
		ident = pgx.Identifier{alias, string(plan.Column)}
	}

	var b strings.Builder
	b.WriteString(" ORDER BY ")
	b.WriteString(ident.Sanitize())
	if plan.Ascending {
		b.WriteString(" ASC")
	} else {
		b.WriteString(" DESC")
	}

	var args []any
	if plan.Limit != nil {
		b.WriteString(" LIMIT $")
		b.WriteString(strconv.Itoa(next))
		args = append(args, *plan.Limit)
	}
	return b.String(), args
}
