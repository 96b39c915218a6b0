package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus type for purchase order status codes
type PurchaseOrderStatus int

const (
	PurchaseOrderPending  PurchaseOrderStatus = 1
	PurchaseOrderApproved PurchaseOrderStatus = 2
	PurchaseOrderRejected PurchaseOrderStatus = 3
	PurchaseOrderComplete PurchaseOrderStatus = 4
)

// PurchaseOrderHeader represents purchase_order_headers table
type PurchaseOrderHeader struct {
	PurchaseOrderID uint                `gorm:"primaryKey;column:purchase_order_id" json:"purchase_order_id"`
	Status          PurchaseOrderStatus `gorm:"type:smallint;not null;default:1" json:"status"`
	TotalDue        decimal.Decimal     `gorm:"type:decimal(19,4);not null;default:0" json:"total_due"`
	ModifiedDate    time.Time           `gorm:"not null" json:"modified_date"`
}

// TableName specifies the table name for PurchaseOrderHeader
func (PurchaseOrderHeader) TableName() string {
	return "purchase_order_headers"
}
