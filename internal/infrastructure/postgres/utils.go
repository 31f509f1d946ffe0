package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/inventory-service/internal/domain"
)

// Códigos SQLSTATE de integridad.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
)

var constraintKinds = map[string]string{
	codeUniqueViolation:     domain.ConstraintUnique,
	codeForeignKeyViolation: domain.ConstraintForeignKey,
	codeNotNullViolation:    domain.ConstraintNotNull,
	codeCheckViolation:      domain.ConstraintCheck,
}

// translate convierte violaciones de integridad en *domain.ConstraintError
// y envuelve el resto con op para el log.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := constraintKinds[pgErr.Code]; ok {
			detail := pgErr.Detail
			if detail == "" {
				detail = pgErr.Message
			}
			return &domain.ConstraintError{Kind: kind, Constraint: pgErr.ConstraintName, Detail: detail}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
