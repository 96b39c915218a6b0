package database

import (
	"fmt"
	"log"

	"github.com/adventureworks/reports"
	"gorm.io/gorm"
)

// LoadSnapshot materializes the seven source tables into an in-memory
// snapshot for the report functions. The connection is only needed while this
// runs; the returned snapshot is self-contained and validated.
func LoadSnapshot(db *gorm.DB) (*reports.Snapshot, error) {
	snap := &reports.Snapshot{}

	loads := []struct {
		name string
		dest interface{}
	}{
		{"sales_order_details", &snap.OrderDetails},
		{"sales_order_headers", &snap.OrderHeaders},
		{"special_offers", &snap.SpecialOffers},
		{"work_orders", &snap.WorkOrders},
		{"purchase_order_headers", &snap.PurchaseOrders},
		{"products", &snap.Products},
		{"product_subcategories", &snap.Subcategories},
	}
	for _, l := range loads {
		if err := db.Find(l.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.name, err)
		}
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Snapshot loaded: %d order details, %d order headers, %d offers, %d work orders, %d purchase orders, %d products, %d subcategories",
		len(snap.OrderDetails), len(snap.OrderHeaders), len(snap.SpecialOffers),
		len(snap.WorkOrders), len(snap.PurchaseOrders), len(snap.Products), len(snap.Subcategories))
	return snap, nil
}
