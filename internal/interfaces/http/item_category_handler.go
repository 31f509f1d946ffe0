package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-service/internal/application/dto"
	"github.com/jhoicas/inventory-service/internal/application/usecase"
)

// ItemCategoryHandler maneja las peticiones HTTP para categorías de ítems.
type ItemCategoryHandler struct {
	uc *usecase.ItemCategoryUseCase
}

// NewItemCategoryHandler construye el handler.
func NewItemCategoryHandler(uc *usecase.ItemCategoryUseCase) *ItemCategoryHandler {
	return &ItemCategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         item-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateItemCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.ItemCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/item-categories [post]
func (h *ItemCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemCategoryRequest
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
// @Summary      Listar categorías
// @Tags         item-categories
// @Security     Bearer
// @Produce      json
// @Param        limit      query  int     false  "Máximo de filas"
// @Param        order_by   query  string  false  "Columna de orden (category_id, name, description)"
// @Param        ascending  query  bool    false  "Orden ascendente"  default(true)
// @Success      200        {array}  dto.ItemCategoryResponse
// @Router       /api/v1/item-categories [get]
func (h *ItemCategoryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener categoría por ID
// @Tags         item-categories
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la categoría"
// @Success      200  {object}  dto.ItemCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/item-categories/{id} [get]
func (h *ItemCategoryHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar categoría (parcial)
// @Tags         item-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                            true  "ID de la categoría"
// @Param        body  body      dto.UpdateItemCategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ItemCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/item-categories/{id} [put]
func (h *ItemCategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateItemCategoryRequest
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
// @Summary      Eliminar categoría
// @Tags         item-categories
// @Security     Bearer
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/item-categories/{id} [delete]
func (h *ItemCategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
