package usecase

import (
	"errors"

	"github.com/jhoicas/inventory-service/internal/domain"
)

// notFoundAs le pone nombre al ErrNotFound pelado que devuelven los repositorios.
func notFoundAs(err error, entityName string, id int64) error {
	var nf *domain.NotFoundError
	if errors.Is(err, domain.ErrNotFound) && !errors.As(err, &nf) {
		return domain.NewNotFound(entityName, id)
	}
	return err
}
