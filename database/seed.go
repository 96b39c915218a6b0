package database

import (
	"fmt"
	"log"
	"time"

	"github.com/adventureworks/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedData seeds a small sample dataset into empty tables. The sample spans
// two years and includes seasonal offers, pending purchase orders and monthly
// stock movements, so every report returns something meaningful against it.
func SeedData(db *gorm.DB, schema string) error {
	log.Println("Checking if database needs seeding...")

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("SET search_path TO %s", schema)).Error; err != nil {
			return fmt.Errorf("failed to set search path: %w", err)
		}
		if err := seedCatalog(tx); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		if err := seedSalesOrders(tx); err != nil {
			return fmt.Errorf("failed to seed sales orders: %w", err)
		}
		if err := seedWorkOrders(tx); err != nil {
			return fmt.Errorf("failed to seed work orders: %w", err)
		}
		if err := seedPurchaseOrders(tx); err != nil {
			return fmt.Errorf("failed to seed purchase orders: %w", err)
		}
		log.Println("Seed completed")
		return nil
	})
}

func strPtr(s string) *string { return &s }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedCatalog(tx *gorm.DB) error {
	subcategories := []models.ProductSubcategory{
		{ProductSubcategoryID: 1, Name: "Road Bikes"},
		{ProductSubcategoryID: 2, Name: "Mountain Bikes"},
		{ProductSubcategoryID: 3, Name: "Touring Bikes"},
		{ProductSubcategoryID: 31, Name: "Helmets"},
	}
	if err := tx.Create(&subcategories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{ProductID: 771, Name: "Road-150 Red, 62", ProductNumber: "BK-R93R-62", ProductSubcategoryID: strPtr("1")},
		{ProductID: 772, Name: "Road-450 Red, 58", ProductNumber: "BK-R68R-58", ProductSubcategoryID: strPtr("1")},
		{ProductID: 775, Name: "Mountain-100 Black, 38", ProductNumber: "BK-M82B-38", ProductSubcategoryID: strPtr("2")},
		{ProductID: 778, Name: "Touring-1000 Blue, 46", ProductNumber: "BK-T79U-46", ProductSubcategoryID: strPtr(" 3 ")}, // padded key, as in the extract
		{ProductID: 707, Name: "Sport-100 Helmet, Red", ProductNumber: "HL-U509-R", ProductSubcategoryID: strPtr("31")},
		{ProductID: 1, Name: "Adjustable Race", ProductNumber: "AR-5381"}, // component, no subcategory
	}
	if err := tx.Create(&products).Error; err != nil {
		return err
	}

	offers := []models.SpecialOffer{
		{SpecialOfferID: 1, Description: "No Discount", Type: "No Discount", Category: "No Discount", DiscountPct: decimal.Zero},
		{SpecialOfferID: 3, Description: "Volume Discount 25 to 40", Type: "Volume Discount", Category: "Reseller", DiscountPct: decimal.NewFromFloat(0.05)},
		{SpecialOfferID: 7, Description: "Sport Helmet Discount", Type: "Seasonal Discount", Category: "Reseller", DiscountPct: decimal.NewFromFloat(0.10)},
		{SpecialOfferID: 12, Description: "LL Road Frame Sale", Type: "seasonal discount promo", Category: "Reseller", DiscountPct: decimal.NewFromFloat(0.15)},
	}
	return tx.Create(&offers).Error
}

func seedSalesOrders(tx *gorm.DB) error {
	type orderSpec struct {
		id        uint
		customer  uint
		territory uint
		status    models.SalesOrderStatus
		date      time.Time
	}
	specs := []orderSpec{
		{43659, 29825, 5, models.SalesOrderShipped, day(2013, time.March, 12)},
		{43661, 29734, 6, models.SalesOrderShipped, day(2013, time.June, 18)},
		{43680, 29825, 5, models.SalesOrderShipped, day(2013, time.September, 3)},
		{44720, 29994, 1, models.SalesOrderShipped, day(2014, time.January, 20)},
		{44722, 29825, 5, models.SalesOrderShipped, day(2014, time.March, 2)},
		{45043, 29994, 1, models.SalesOrderShipped, day(2014, time.May, 14)},
		{45301, 30052, 4, models.SalesOrderShipped, day(2014, time.May, 27)},
		{45322, 30052, 4, models.SalesOrderInProcess, day(2014, time.June, 8)},
		{45410, 29734, 6, models.SalesOrderShipped, day(2014, time.June, 21)},
	}

	headers := make([]models.SalesOrderHeader, 0, len(specs))
	for _, o := range specs {
		headers = append(headers, models.SalesOrderHeader{
			SalesOrderID: o.id,
			CustomerID:   o.customer,
			TerritoryID:  o.territory,
			Status:       o.status,
			TotalDue:     decimal.Zero,
			ModifiedDate: o.date,
		})
	}

	type lineSpec struct {
		id      uint
		order   uint
		product uint
		offer   uint
		qty     int
		price   string
	}
	lines := []lineSpec{
		{110562, 43659, 771, 1, 2, "3578.27"},
		{110563, 43659, 707, 7, 4, "34.99"},
		{110691, 43661, 775, 1, 1, "3374.99"},
		{110790, 43680, 772, 3, 3, "1457.99"},
		{121317, 44720, 771, 1, 3, "3578.27"},
		{121318, 44720, 778, 12, 2, "2384.07"},
		{121417, 44722, 772, 1, 2, "1457.99"},
		{124011, 45043, 707, 7, 6, "34.99"},
		{124250, 45301, 775, 1, 2, "3374.99"},
		{124251, 45322, 775, 1, 1, "3374.99"},
		{124390, 45410, 778, 12, 1, "2384.07"},
	}

	offerPct := map[uint]decimal.Decimal{
		1:  decimal.Zero,
		3:  decimal.NewFromFloat(0.05),
		7:  decimal.NewFromFloat(0.10),
		12: decimal.NewFromFloat(0.15),
	}
	dateByOrder := make(map[uint]time.Time, len(specs))
	for _, o := range specs {
		dateByOrder[o.id] = o.date
	}

	details := make([]models.SalesOrderDetail, 0, len(lines))
	totals := make(map[uint]decimal.Decimal)
	for _, l := range lines {
		price := decimal.RequireFromString(l.price)
		pct := offerPct[l.offer]
		lineTotal := price.
			Mul(decimal.NewFromInt(1).Sub(pct)).
			Mul(decimal.NewFromInt(int64(l.qty)))
		details = append(details, models.SalesOrderDetail{
			SalesOrderDetailID: l.id,
			SalesOrderID:       l.order,
			ProductID:          l.product,
			SpecialOfferID:     l.offer,
			OrderQty:           l.qty,
			UnitPrice:          price,
			UnitPriceDiscount:  pct,
			LineTotal:          lineTotal,
			ModifiedDate:       dateByOrder[l.order],
		})
		totals[l.order] = totals[l.order].Add(lineTotal)
	}
	for i := range headers {
		headers[i].TotalDue = totals[headers[i].SalesOrderID]
	}

	if err := tx.Create(&headers).Error; err != nil {
		return err
	}
	return tx.Create(&details).Error
}

func seedWorkOrders(tx *gorm.DB) error {
	type woSpec struct {
		id      uint
		product uint
		qty     int
		scrap   int
		date    time.Time
	}
	specs := []woSpec{
		{1, 771, 10, 1, day(2014, time.January, 15)},
		{2, 771, 14, 0, day(2014, time.February, 12)},
		{3, 771, 7, 0, day(2014, time.March, 10)},
		{4, 775, 5, 0, day(2014, time.January, 22)},
		{5, 775, 5, 1, day(2014, time.March, 19)},
		{6, 778, 8, 0, day(2014, time.February, 4)},
		{7, 707, 40, 2, day(2014, time.May, 6)},
		{8, 772, 6, 0, day(2013, time.November, 11)},
	}
	orders := make([]models.WorkOrder, 0, len(specs))
	for _, w := range specs {
		orders = append(orders, models.WorkOrder{
			WorkOrderID:  w.id,
			ProductID:    w.product,
			OrderQty:     w.qty + w.scrap,
			StockedQty:   w.qty,
			ScrappedQty:  w.scrap,
			ModifiedDate: w.date,
		})
	}
	return tx.Create(&orders).Error
}

func seedPurchaseOrders(tx *gorm.DB) error {
	orders := []models.PurchaseOrderHeader{
		{PurchaseOrderID: 1, Status: models.PurchaseOrderPending, TotalDue: decimal.RequireFromString("500"), ModifiedDate: day(2014, time.April, 3)},
		{PurchaseOrderID: 2, Status: models.PurchaseOrderPending, TotalDue: decimal.RequireFromString("300"), ModifiedDate: day(2014, time.May, 9)},
		{PurchaseOrderID: 3, Status: models.PurchaseOrderComplete, TotalDue: decimal.RequireFromString("100"), ModifiedDate: day(2014, time.May, 20)},
		{PurchaseOrderID: 4, Status: models.PurchaseOrderApproved, TotalDue: decimal.RequireFromString("870.50"), ModifiedDate: day(2013, time.December, 2)},
	}
	return tx.Create(&orders).Error
}
