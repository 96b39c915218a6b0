package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SubcategorySalesRow is one month of one subcategory's performance inside
// the trailing-12-month window.
type SubcategorySalesRow struct {
	Period      time.Time // first day of the calendar month
	Month       string    // display label, e.g. "Jun 2013"
	Subcategory string
	Qty         int
	Sales       decimal.Decimal
	OrderCount  int
}

// SubcategoryMonthlySales reports quantity, sales value and distinct order
// count per (calendar month, subcategory) for the 12 calendar months leading
// up to the newest order-line date in the snapshot. Order lines whose product
// has no resolvable subcategory are excluded.
func SubcategoryMonthlySales(s *Snapshot) ([]SubcategorySalesRow, error) {
	if err := s.validate(tabOrderDetails | tabProducts | tabSubcategories); err != nil {
		return nil, err
	}
	if len(s.OrderDetails) == 0 {
		return []SubcategorySalesRow{}, nil
	}

	maxDate := s.OrderDetails[0].ModifiedDate
	for _, d := range s.OrderDetails[1:] {
		if d.ModifiedDate.After(maxDate) {
			maxDate = d.ModifiedDate
		}
	}
	windowStart := maxDate.AddDate(0, -12, 0)

	subNames := s.subcategoryNameByProduct()

	type key struct {
		period      time.Time
		subcategory string
	}
	type agg struct {
		qty    int
		sales  decimal.Decimal
		orders map[uint]struct{}
	}
	groups := make(map[key]*agg)
	for _, d := range s.OrderDetails {
		if d.ModifiedDate.Before(windowStart) {
			continue
		}
		sub, ok := subNames[d.ProductID]
		if !ok {
			continue
		}
		k := key{period: monthStart(d.ModifiedDate), subcategory: sub}
		a := groups[k]
		if a == nil {
			a = &agg{sales: decimal.Zero, orders: make(map[uint]struct{})}
			groups[k] = a
		}
		a.qty += d.OrderQty
		a.sales = a.sales.Add(d.LineTotal)
		a.orders[d.SalesOrderID] = struct{}{}
	}

	rows := make([]SubcategorySalesRow, 0, len(groups))
	for k, a := range groups {
		rows = append(rows, SubcategorySalesRow{
			Period:      k.period,
			Month:       monthLabel(k.period),
			Subcategory: k.subcategory,
			Qty:         a.qty,
			Sales:       a.sales,
			OrderCount:  len(a.orders),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Subcategory != rows[j].Subcategory {
			return rows[i].Subcategory < rows[j].Subcategory
		}
		return rows[i].Period.Before(rows[j].Period)
	})
	return rows, nil
}

// SubcategoryGrowthRow is one subcategory's year-over-year quantity growth.
type SubcategoryGrowthRow struct {
	Subcategory string
	Year        int
	Qty         int
	PrevQty     int
	Growth      decimal.Decimal // curr/prev - 1, rounded to 2 decimals
	Rank        int
}

// SubcategoryYoYGrowth ranks subcategories by year-over-year order quantity
// growth and keeps the top three ranks, ties included. A year with no data
// for the immediately preceding year produces no row, and a previous-year
// quantity of zero leaves the growth undefined, so that year is skipped too.
func SubcategoryYoYGrowth(s *Snapshot) ([]SubcategoryGrowthRow, error) {
	if err := s.validate(tabOrderDetails | tabProducts | tabSubcategories); err != nil {
		return nil, err
	}

	subNames := s.subcategoryNameByProduct()

	// qty per (subcategory, year)
	yearly := make(map[string]map[int]int)
	for _, d := range s.OrderDetails {
		sub, ok := subNames[d.ProductID]
		if !ok {
			continue
		}
		if yearly[sub] == nil {
			yearly[sub] = make(map[int]int)
		}
		yearly[sub][d.ModifiedDate.Year()] += d.OrderQty
	}

	one := decimal.NewFromInt(1)
	rows := make([]SubcategoryGrowthRow, 0)
	for sub, byYear := range yearly {
		for year, qty := range byYear {
			prev, ok := byYear[year-1]
			if !ok || prev == 0 {
				continue
			}
			growth := decimal.NewFromInt(int64(qty)).
				Div(decimal.NewFromInt(int64(prev))).
				Sub(one).
				Round(2)
			rows = append(rows, SubcategoryGrowthRow{
				Subcategory: sub,
				Year:        year,
				Qty:         qty,
				PrevQty:     prev,
				Growth:      growth,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Growth.Equal(rows[j].Growth) {
			return rows[i].Growth.GreaterThan(rows[j].Growth)
		}
		if rows[i].Subcategory != rows[j].Subcategory {
			return rows[i].Subcategory < rows[j].Subcategory
		}
		return rows[i].Year < rows[j].Year
	})
	ranks := denseRanks(len(rows), func(i int) bool {
		return rows[i].Growth.Equal(rows[i-1].Growth)
	})

	out := make([]SubcategoryGrowthRow, 0, 3)
	for i := range rows {
		if ranks[i] > 3 {
			break
		}
		rows[i].Rank = ranks[i]
		out = append(out, rows[i])
	}
	return out, nil
}
