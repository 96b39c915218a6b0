package models

import "time"

// WorkOrder represents work_orders table, one row per manufacturing/stock-movement event
type WorkOrder struct {
	WorkOrderID  uint      `gorm:"primaryKey;column:work_order_id" json:"work_order_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	OrderQty     int       `gorm:"not null" json:"order_qty"`
	StockedQty   int       `gorm:"not null;default:0" json:"stocked_qty"`
	ScrappedQty  int       `gorm:"not null;default:0" json:"scrapped_qty"`
	ModifiedDate time.Time `gorm:"not null" json:"modified_date"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "work_orders"
}
