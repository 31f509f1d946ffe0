package listing

// Columnas de items.
const (
	ItemID                Column = "item_id"
	ItemCode              Column = "item_code"
	ItemName              Column = "name"
	ItemDescription       Column = "description"
	ItemQuantity          Column = "quantity"
	ItemLowStockThreshold Column = "low_stock_threshold"
	ItemCreatedAt         Column = "created_at"
	ItemUpdatedAt         Column = "updated_at"
)

// Columnas de categorías.
const (
	CategoryID          Column = "category_id"
	CategoryName        Column = "name"
	CategoryDescription Column = "description"
)

// Columnas de proveedores.
const (
	VendorID          Column = "vendor_id"
	VendorName        Column = "name"
	VendorDescription Column = "description"
)

// Columnas de unidades de medida.
const (
	UnitOfMeasureID           Column = "uom_id"
	UnitOfMeasureName         Column = "name"
	UnitOfMeasureAbbreviation Column = "abbreviation"
	UnitOfMeasureDescription  Column = "description"
)

// Listas blancas por entidad.
var (
	ItemColumns = NewAllowList(ItemID,
		ItemCode, ItemName, ItemDescription, ItemQuantity,
		ItemLowStockThreshold, ItemCreatedAt, ItemUpdatedAt,
	)
	ItemCategoryColumns  = NewAllowList(CategoryID, CategoryName, CategoryDescription)
	VendorColumns        = NewAllowList(VendorID, VendorName, VendorDescription)
	UnitOfMeasureColumns = NewAllowList(UnitOfMeasureID,
		UnitOfMeasureName, UnitOfMeasureAbbreviation, UnitOfMeasureDescription,
	)
)
