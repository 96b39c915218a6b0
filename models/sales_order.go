package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderStatus type for sales order status codes
type SalesOrderStatus int

const (
	SalesOrderInProcess   SalesOrderStatus = 1
	SalesOrderApproved    SalesOrderStatus = 2
	SalesOrderBackordered SalesOrderStatus = 3
	SalesOrderRejected    SalesOrderStatus = 4
	SalesOrderShipped     SalesOrderStatus = 5
	SalesOrderCancelled   SalesOrderStatus = 6
)

// SalesOrderHeader represents sales_order_headers table, one row per order
type SalesOrderHeader struct {
	SalesOrderID uint             `gorm:"primaryKey;column:sales_order_id" json:"sales_order_id"`
	CustomerID   uint             `gorm:"not null" json:"customer_id"`
	TerritoryID  uint             `gorm:"not null" json:"territory_id"`
	Status       SalesOrderStatus `gorm:"type:smallint;not null" json:"status"`
	TotalDue     decimal.Decimal  `gorm:"type:decimal(19,4);not null;default:0" json:"total_due"`
	ModifiedDate time.Time        `gorm:"not null" json:"modified_date"`
}

// TableName specifies the table name for SalesOrderHeader
func (SalesOrderHeader) TableName() string {
	return "sales_order_headers"
}

// SalesOrderDetail represents sales_order_details table, one row per order line
type SalesOrderDetail struct {
	SalesOrderDetailID uint            `gorm:"primaryKey;column:sales_order_detail_id" json:"sales_order_detail_id"`
	SalesOrderID       uint            `gorm:"not null;index" json:"sales_order_id"`
	ProductID          uint            `gorm:"not null;index" json:"product_id"`
	SpecialOfferID     uint            `gorm:"not null" json:"special_offer_id"`
	OrderQty           int             `gorm:"not null;check:order_qty >= 0" json:"order_qty"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"unit_price"`
	UnitPriceDiscount  decimal.Decimal `gorm:"type:decimal(19,4);not null;default:0" json:"unit_price_discount"`
	LineTotal          decimal.Decimal `gorm:"type:decimal(38,6);not null" json:"line_total"`
	ModifiedDate       time.Time       `gorm:"not null" json:"modified_date"`

	// Relationships
	Order   SalesOrderHeader `gorm:"foreignKey:SalesOrderID" json:"order,omitempty"`
	Product Product          `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Offer   SpecialOffer     `gorm:"foreignKey:SpecialOfferID" json:"offer,omitempty"`
}

// TableName specifies the table name for SalesOrderDetail
func (SalesOrderDetail) TableName() string {
	return "sales_order_details"
}
