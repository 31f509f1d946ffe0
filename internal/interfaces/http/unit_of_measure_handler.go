package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/application/usecase"
)

// UnitOfMeasureHandler maneja las peticiones HTTP para unidades de medida.
type UnitOfMeasureHandler struct {
	uc *usecase.UnitOfMeasureUseCase
}

// NewUnitOfMeasureHandler construye el handler.
func NewUnitOfMeasureHandler(uc *usecase.UnitOfMeasureUseCase) *UnitOfMeasureHandler {
	return &UnitOfMeasureHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad de medida
// @Tags         units-of-measure
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUnitOfMeasureRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitOfMeasureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/unit-of-measure [post]
func (h *UnitOfMeasureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUnitOfMeasureRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar unidades de medida
// @Tags         units-of-measure
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Máximo de filas"
// @Param        order_by   query  string  false  "Columna de orden (uom_id, name, abbreviation, description)"
// @Param        ascending  query  bool    false  "Orden ascendente"  default(true)
// @Success      200        {array}  dto.UnitOfMeasureResponse
// @Router       /api/v1/unit-of-measure [get]
func (h *UnitOfMeasureHandler) List(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad de medida por ID
// @Tags         units-of-measure
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la unidad"
// @Success      200  {object}  dto.UnitOfMeasureResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/unit-of-measure/{id} [get]
func (h *UnitOfMeasureHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar unidad de medida (parcial)
// @Tags         units-of-measure
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                            true  "ID de la unidad"
// @Param        body  body      dto.UpdateUnitOfMeasureRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UnitOfMeasureResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/unit-of-measure/{id} [put]
func (h *UnitOfMeasureHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateUnitOfMeasureRequest
	if err := bindPatch(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad de medida
// @Tags         units-of-measure
// @Security     Bearer
// @Param        id   path  int  true  "ID de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/unit-of-measure/{id} [delete]
func (h *UnitOfMeasureHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
