package models

// Product represents products table
//
// ProductSubcategoryID is stored as text even though product_subcategories
// keys on an integer. The source extract ships the column that way, so the
// model keeps the physical type and the analysis layer coerces it when
// joining.
type Product struct {
	ProductID            uint    `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name                 string  `gorm:"type:varchar(100);not null" json:"name"`
	ProductNumber        string  `gorm:"type:varchar(25);not null;unique" json:"product_number"`
	ProductSubcategoryID *string `gorm:"type:varchar(20)" json:"product_subcategory_id,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductSubcategory represents product_subcategories table
type ProductSubcategory struct {
	ProductSubcategoryID uint   `gorm:"primaryKey;column:product_subcategory_id" json:"product_subcategory_id"`
	Name                 string `gorm:"type:varchar(100);not null;unique" json:"name"`
}

// TableName specifies the table name for ProductSubcategory
func (ProductSubcategory) TableName() string {
	return "product_subcategories"
}
