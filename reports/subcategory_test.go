package reports

import (
	"testing"
	"time"

	"github.com/adventureworks/models"
	"github.com/google/go-cmp/cmp"
)

func bikeCatalog() ([]models.Product, []models.ProductSubcategory) {
	products := []models.Product{
		{ProductID: 771, Name: "Road-150 Red, 62", ProductSubcategoryID: strPtr("1")},
		{ProductID: 775, Name: "Mountain-100 Black, 38", ProductSubcategoryID: strPtr("2")},
		{ProductID: 707, Name: "Sport-100 Helmet, Red", ProductSubcategoryID: strPtr("31")},
		{ProductID: 1, Name: "Adjustable Race"}, // no subcategory
	}
	subcategories := []models.ProductSubcategory{
		{ProductSubcategoryID: 1, Name: "Road Bikes"},
		{ProductSubcategoryID: 2, Name: "Mountain Bikes"},
		{ProductSubcategoryID: 31, Name: "Helmets"},
	}
	return products, subcategories
}

func detail(id, order, product uint, qty int, total string, d time.Time) models.SalesOrderDetail {
	return models.SalesOrderDetail{
		SalesOrderDetailID: id,
		SalesOrderID:       order,
		ProductID:          product,
		OrderQty:           qty,
		LineTotal:          dec(total),
		ModifiedDate:       d,
	}
}

func TestSubcategoryMonthlySales_WindowGroupingAndOrder(t *testing.T) {
	products, subcategories := bikeCatalog()
	s := &Snapshot{
		Products:      products,
		Subcategories: subcategories,
		OrderDetails: []models.SalesOrderDetail{
			// newest date: 2014-06-30, so the window starts 2013-06-30
			detail(1, 100, 771, 2, "7156.54", date(2014, time.June, 30)),
			detail(2, 100, 707, 4, "139.96", date(2014, time.June, 30)),
			detail(3, 101, 771, 1, "3578.27", date(2014, time.June, 5)),
			detail(4, 102, 771, 3, "10734.81", date(2013, time.July, 2)),
			detail(5, 103, 771, 5, "17891.35", date(2013, time.June, 29)), // before the window
			detail(6, 104, 1, 9, "66.33", date(2014, time.May, 1)),        // no subcategory
		},
	}

	rows, err := SubcategoryMonthlySales(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want := []SubcategorySalesRow{
		{Period: date(2014, time.June, 1), Month: "Jun 2014", Subcategory: "Helmets", Qty: 4, Sales: dec("139.96"), OrderCount: 1},
		{Period: date(2013, time.July, 1), Month: "Jul 2013", Subcategory: "Road Bikes", Qty: 3, Sales: dec("10734.81"), OrderCount: 1},
		{Period: date(2014, time.June, 1), Month: "Jun 2014", Subcategory: "Road Bikes", Qty: 3, Sales: dec("10734.81"), OrderCount: 2},
	}
	if diff := cmp.Diff(want, rows, decComparer); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestSubcategoryMonthlySales_WindowSumProperty(t *testing.T) {
	products, subcategories := bikeCatalog()
	details := []models.SalesOrderDetail{
		detail(1, 100, 771, 2, "10", date(2014, time.June, 30)),
		detail(2, 101, 775, 7, "20", date(2014, time.January, 15)),
		detail(3, 102, 707, 3, "30", date(2013, time.July, 1)),
		detail(4, 103, 771, 11, "40", date(2013, time.May, 20)), // outside
		detail(5, 104, 775, 13, "50", date(2012, time.June, 30)), // outside
	}
	s := &Snapshot{Products: products, Subcategories: subcategories, OrderDetails: details}

	rows, err := SubcategoryMonthlySales(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	got := 0
	for _, r := range rows {
		got += r.Qty
	}
	windowStart := date(2014, time.June, 30).AddDate(0, -12, 0)
	want := 0
	names := s.subcategoryNameByProduct()
	for _, d := range details {
		if _, ok := names[d.ProductID]; ok && !d.ModifiedDate.Before(windowStart) {
			want += d.OrderQty
		}
	}
	if got != want {
		t.Fatalf("window sum property violated: got %d, want %d", got, want)
	}
}

func TestSubcategoryMonthlySales_EmptyInput(t *testing.T) {
	rows, err := SubcategoryMonthlySales(&Snapshot{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(rows))
	}
}

func yearlyDetails(product uint, qtyByYear map[int]int) []models.SalesOrderDetail {
	var out []models.SalesOrderDetail
	var id uint = 1
	for year, qty := range qtyByYear {
		out = append(out, models.SalesOrderDetail{
			SalesOrderDetailID: product*1000 + id,
			SalesOrderID:       product*2000 + id,
			ProductID:          product,
			OrderQty:           qty,
			ModifiedDate:       date(year, time.March, 15),
		})
		id++
	}
	return out
}

func TestSubcategoryYoYGrowth_RankingAndExclusions(t *testing.T) {
	products := []models.Product{
		{ProductID: 771, Name: "Road-150", ProductSubcategoryID: strPtr("1")},
		{ProductID: 775, Name: "Mountain-100", ProductSubcategoryID: strPtr("2")},
		{ProductID: 778, Name: "Touring-1000", ProductSubcategoryID: strPtr("3")},
		{ProductID: 707, Name: "Sport-100 Helmet", ProductSubcategoryID: strPtr("31")},
		{ProductID: 712, Name: "AWC Logo Cap", ProductSubcategoryID: strPtr("19")},
	}
	subcategories := []models.ProductSubcategory{
		{ProductSubcategoryID: 1, Name: "Road Bikes"},
		{ProductSubcategoryID: 2, Name: "Mountain Bikes"},
		{ProductSubcategoryID: 3, Name: "Touring Bikes"},
		{ProductSubcategoryID: 31, Name: "Helmets"},
		{ProductSubcategoryID: 19, Name: "Caps"},
	}

	var details []models.SalesOrderDetail
	details = append(details, yearlyDetails(771, map[int]int{2013: 100, 2014: 150})...) // +0.50
	details = append(details, yearlyDetails(775, map[int]int{2013: 100, 2014: 150})...) // +0.50 (tie)
	details = append(details, yearlyDetails(778, map[int]int{2013: 200, 2014: 220})...) // +0.10
	details = append(details, yearlyDetails(707, map[int]int{2013: 100, 2014: 95})...)  // -0.05
	details = append(details, yearlyDetails(712, map[int]int{2012: 50, 2014: 500})...)  // gap year: excluded

	s := &Snapshot{Products: products, Subcategories: subcategories, OrderDetails: details}
	rows, err := SubcategoryYoYGrowth(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	want := []SubcategoryGrowthRow{
		{Subcategory: "Mountain Bikes", Year: 2014, Qty: 150, PrevQty: 100, Growth: dec("0.5"), Rank: 1},
		{Subcategory: "Road Bikes", Year: 2014, Qty: 150, PrevQty: 100, Growth: dec("0.5"), Rank: 1},
		{Subcategory: "Touring Bikes", Year: 2014, Qty: 220, PrevQty: 200, Growth: dec("0.1"), Rank: 2},
		{Subcategory: "Helmets", Year: 2014, Qty: 95, PrevQty: 100, Growth: dec("-0.05"), Rank: 3},
	}
	if diff := cmp.Diff(want, rows, decComparer); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	for _, r := range rows {
		if r.Subcategory == "Caps" {
			t.Fatal("subcategory with a gap year must not produce a growth row")
		}
	}
}

func TestSubcategoryYoYGrowth_FirstYearExcluded(t *testing.T) {
	products := []models.Product{{ProductID: 771, Name: "Road-150", ProductSubcategoryID: strPtr("1")}}
	subcategories := []models.ProductSubcategory{{ProductSubcategoryID: 1, Name: "Road Bikes"}}
	s := &Snapshot{
		Products:      products,
		Subcategories: subcategories,
		OrderDetails:  yearlyDetails(771, map[int]int{2013: 100}),
	}
	rows, err := SubcategoryYoYGrowth(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("a single observed year has no previous year; got %d rows", len(rows))
	}
}

func TestSubcategoryYoYGrowth_ZeroPreviousYearSkipped(t *testing.T) {
	products := []models.Product{{ProductID: 771, Name: "Road-150", ProductSubcategoryID: strPtr("1")}}
	subcategories := []models.ProductSubcategory{{ProductSubcategoryID: 1, Name: "Road Bikes"}}
	s := &Snapshot{
		Products:      products,
		Subcategories: subcategories,
		OrderDetails:  yearlyDetails(771, map[int]int{2013: 0, 2014: 40}),
	}
	rows, err := SubcategoryYoYGrowth(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("zero previous-year quantity leaves growth undefined; got %+v", rows)
	}
}

func TestSubcategoryReports_Idempotent(t *testing.T) {
	products, subcategories := bikeCatalog()
	s := &Snapshot{
		Products:      products,
		Subcategories: subcategories,
		OrderDetails: append(
			yearlyDetails(771, map[int]int{2013: 100, 2014: 150}),
			yearlyDetails(707, map[int]int{2013: 30, 2014: 60})...),
	}
	first, err := SubcategoryYoYGrowth(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	second, err := SubcategoryYoYGrowth(s)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if diff := cmp.Diff(first, second, decComparer); diff != "" {
		t.Fatalf("rerun differs:\n%s", diff)
	}
}
