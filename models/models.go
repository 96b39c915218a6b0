package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&ProductSubcategory{},
		&SpecialOffer{},
		&SalesOrderHeader{},
		&PurchaseOrderHeader{},

		// 2. Tables with single dependencies
		&Product{}, // references ProductSubcategory through a text column, no FK constraint

		// 3. Detail/event tables
		&SalesOrderDetail{}, // depends on: SalesOrderHeader, Product, SpecialOffer
		&WorkOrder{},        // depends on: Product
	}
}
