package http

// Permisos que reconoce el servicio (vienen en el claim "permissions" del JWT).
const (
	PermManageItems = "manage_items_INVENTORY_SERVICE"
	PermViewItems   = "view_items_INVENTORY_SERVICE"
	PermDeductItems = "deduct_items_INVENTORY_SERVICE"
)
