package reports

import (
	"testing"
	"time"

	"github.com/adventureworks/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func discountSnapshot() *Snapshot {
	return &Snapshot{
		Products: []models.Product{
			{ProductID: 707, Name: "Sport-100 Helmet, Red", ProductSubcategoryID: strPtr("31")},
			{ProductID: 771, Name: "Road-150 Red, 62", ProductSubcategoryID: strPtr("1")},
		},
		Subcategories: []models.ProductSubcategory{
			{ProductSubcategoryID: 31, Name: "Helmets"},
			{ProductSubcategoryID: 1, Name: "Road Bikes"},
		},
		SpecialOffers: []models.SpecialOffer{
			{SpecialOfferID: 7, Type: "SEASONAL DISCOUNT", DiscountPct: dec("0.1")},
			{SpecialOfferID: 12, Type: "Seasonal Discount Promo", DiscountPct: dec("0.15")},
			{SpecialOfferID: 2, Type: "Seasonal", DiscountPct: dec("0.5")},   // must not match
			{SpecialOfferID: 3, Type: "Volume Discount", DiscountPct: dec("0.05")},
		},
	}
}

func offerLine(id uint, product, offer uint, qty int, price string, d time.Time) models.SalesOrderDetail {
	return models.SalesOrderDetail{
		SalesOrderDetailID: id,
		SalesOrderID:       id + 5000,
		ProductID:          product,
		SpecialOfferID:     offer,
		OrderQty:           qty,
		UnitPrice:          dec(price),
		ModifiedDate:       d,
	}
}

func TestSeasonalDiscountCost_CaseInsensitiveMatch(t *testing.T) {
	s := discountSnapshot()
	s.OrderDetails = []models.SalesOrderDetail{
		offerLine(1, 707, 7, 4, "34.99", date(2013, time.June, 10)),  // 4*0.1*34.99 = 13.996
		offerLine(2, 771, 12, 1, "3578.27", date(2013, time.July, 2)), // 1*0.15*3578.27 = 536.7405
		offerLine(3, 707, 2, 10, "34.99", date(2013, time.August, 1)), // "Seasonal" alone: excluded
		offerLine(4, 707, 3, 10, "34.99", date(2013, time.August, 2)), // volume discount: excluded
	}

	rows, err := SeasonalDiscountCost(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want := []DiscountCostRow{
		{Year: 2013, Subcategory: "Helmets", Cost: dec("13.996")},
		{Year: 2013, Subcategory: "Road Bikes", Cost: dec("536.7405")},
	}
	if diff := cmp.Diff(want, rows, decComparer); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSeasonalDiscountCost_ExactDuplicatesCollapsed(t *testing.T) {
	s := discountSnapshot()
	d := date(2014, time.February, 14)
	s.OrderDetails = []models.SalesOrderDetail{
		offerLine(1, 707, 7, 4, "34.99", d),
		offerLine(2, 707, 7, 4, "34.99", d), // identical (date, subcategory, pct, type, cost): dropped
		offerLine(3, 707, 7, 2, "34.99", d), // different cost: kept
	}

	rows, err := SeasonalDiscountCost(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// 4*0.1*34.99 + 2*0.1*34.99 = 13.996 + 6.998
	want := []DiscountCostRow{
		{Year: 2014, Subcategory: "Helmets", Cost: dec("20.994")},
	}
	if diff := cmp.Diff(want, rows, decComparer); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSeasonalDiscountCost_EmptyInput(t *testing.T) {
	rows, err := SeasonalDiscountCost(&Snapshot{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %+v", rows)
	}
}

func TestSeasonalDiscountCost_ZeroPctOfferCostsNothing(t *testing.T) {
	s := discountSnapshot()
	s.SpecialOffers = append(s.SpecialOffers, models.SpecialOffer{
		SpecialOfferID: 20, Type: "Winter Seasonal Discount", DiscountPct: decimal.Zero,
	})
	s.OrderDetails = []models.SalesOrderDetail{
		offerLine(1, 707, 20, 8, "34.99", date(2014, time.December, 1)),
	}

	rows, err := SeasonalDiscountCost(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 1 || !rows[0].Cost.IsZero() {
		t.Fatalf("zero-pct seasonal offer should aggregate to zero cost: %+v", rows)
	}
}
