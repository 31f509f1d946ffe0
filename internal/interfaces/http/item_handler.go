package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP para ítems.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear ítem
// @Description  Verifica categoría, proveedor (si viene) y unidad de medida antes de insertar.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
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
// @Summary      Listar ítems
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Máximo de filas"
// @Param        order_by   query  string  false  "Columna de orden"
// @Param        ascending  query  bool    false  "Orden ascendente"  default(true)
// @Success      200        {array}  dto.ItemResponse
// @Router       /api/v1/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
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

// ListLowStock godoc
// @Summary      Listar ítems con stock bajo
// @Description  Ítems con quantity < low_stock_threshold.
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Máximo de filas"
// @Param        order_by   query  string  false  "Columna de orden"
// @Param        ascending  query  bool    false  "Orden ascendente"  default(true)
// @Success      200        {array}  dto.ItemResponse
// @Router       /api/v1/items/low-stock [get]
func (h *ItemHandler) ListLowStock(c *fiber.Ctx) error {
	q, err := parseListQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListLowStock(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar ítem (parcial)
// @Description  Solo cambia los campos enviados. description y vendor_id aceptan null.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "ID del ítem"
// @Param        body  body      dto.UpdateItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateItemRequest
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
// @Summary      Eliminar ítem
// @Tags         items
// @Security     Bearer
// @Param        id   path  int  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deduct godoc
// @Summary      Descontar cantidad
// @Description  Resta change_quantity del stock. Si no alcanza responde 409 INSUFFICIENT_STOCK y el stock no cambia.
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id               path   int  true  "ID del ítem"
// @Param        change_quantity  query  int  true  "Unidades a descontar (> 0)"
// @Success      200              {object}  dto.ItemResponse
// @Failure      400              {object}  dto.ErrorResponse
// @Failure      404              {object}  dto.ErrorResponse
// @Failure      409              {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [patch]
func (h *ItemHandler) Deduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var q dto.DeductQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, invalid("VALIDATION", "change_quantity debe ser un entero"))
	}
	if err := validateStruct(q); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.DeductQuantity(c.UserContext(), id, q.ChangeQuantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
