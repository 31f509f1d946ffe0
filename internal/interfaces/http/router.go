package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-service/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemCategoryUC  *usecase.ItemCategoryUseCase
	VendorUC        *usecase.VendorUseCase
	UnitOfMeasureUC *usecase.UnitOfMeasureUseCase
	ItemUC          *usecase.ItemUseCase
	JWTSecret       string
}

// Router registra las rutas de la API bajo /api/v1. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1", AuthMiddleware(deps.JWTSecret))

	canManage := RequirePermission(PermManageItems)
	canView := RequirePermission(PermManageItems, PermViewItems)
	canDeduct := RequirePermission(PermManageItems, PermDeductItems)

	// Item categories
	categories := api.Group("/item-categories")
	categoryHandler := NewItemCategoryHandler(deps.ItemCategoryUC)
	categories.Post("/", canManage, categoryHandler.Create)
	categories.Get("/", canView, categoryHandler.List)
	categories.Get("/:id", canView, categoryHandler.GetByID)
	categories.Put("/:id", canManage, categoryHandler.Update)
	categories.Delete("/:id", canManage, categoryHandler.Delete)

	// Vendors
	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", canManage, vendorHandler.Create)
	vendors.Get("/", canView, vendorHandler.List)
	vendors.Get("/:id", canView, vendorHandler.GetByID)
	vendors.Put("/:id", canManage, vendorHandler.Update)
	vendors.Delete("/:id", canManage, vendorHandler.Delete)

	// Units of measure
	uoms := api.Group("/unit-of-measure")
	uomHandler := NewUnitOfMeasureHandler(deps.UnitOfMeasureUC)
	uoms.Post("/", canManage, uomHandler.Create)
	uoms.Get("/", canView, uomHandler.List)
	uoms.Get("/:id", canView, uomHandler.GetByID)
	uoms.Put("/:id", canManage, uomHandler.Update)
	uoms.Delete("/:id", canManage, uomHandler.Delete)

	// Items. /low-stock e /id/:id van antes de /:id.
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", canManage, itemHandler.Create)
	items.Get("/", canView, itemHandler.List)
	items.Get("/low-stock", canView, itemHandler.ListLowStock)
	items.Get("/id/:id", canView, itemHandler.GetByID)
	items.Get("/:id", canView, itemHandler.GetByID)
	items.Put("/:id", canManage, itemHandler.Update)
	items.Delete("/:id", canManage, itemHandler.Delete)
	items.Patch("/:id", canDeduct, itemHandler.Deduct)
	items.Patch("/:id/deduct", canDeduct, itemHandler.Deduct)
}
