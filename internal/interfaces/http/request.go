package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-service/internal/application/dto"
)

// parseID lee :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("INVALID_ID", "id debe ser un entero positivo")
	}
	return id, nil
}

// bindBody decodifica el JSON y aplica las reglas de validación.
func bindBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return invalid("INVALID_BODY", "cuerpo inválido")
	}
	return validateStruct(out)
}

// patchRequest es un DTO de actualización parcial.
type patchRequest interface {
	NullFields() []string
}

// bindPatch como bindBody, y además rechaza null en columnas no nulables.
func bindPatch(c *fiber.Ctx, out patchRequest) error {
	if err := c.BodyParser(out); err != nil {
		return invalid("INVALID_BODY", "cuerpo inválido")
	}
	if err := rejectNulls(out.NullFields()); err != nil {
		return err
	}
	return validateStruct(out)
}

// parseListQuery lee limit, order_by y ascending.
func parseListQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return q, invalid("VALIDATION", "parámetros de listado inválidos")
	}
	if err := validateStruct(q); err != nil {
		return q, err
	}
	return q, nil
}
