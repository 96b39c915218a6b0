package models

import "github.com/shopspring/decimal"

// SpecialOffer represents special_offers table
type SpecialOffer struct {
	SpecialOfferID uint            `gorm:"primaryKey;column:special_offer_id" json:"special_offer_id"`
	Description    string          `gorm:"type:varchar(255);not null" json:"description"`
	Type           string          `gorm:"type:varchar(50);not null" json:"type"`
	Category       string          `gorm:"type:varchar(50)" json:"category"`
	DiscountPct    decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0;check:discount_pct >= 0 AND discount_pct <= 1" json:"discount_pct"`
}

// TableName specifies the table name for SpecialOffer
func (SpecialOffer) TableName() string {
	return "special_offers"
}
