package reports

import (
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// StockTrendRow is one month of stocked quantity for one product, with the
// change against the previous stocked month.
type StockTrendRow struct {
	Product   string
	Month     int
	Year      int
	Stocked   int
	PctChange decimal.Decimal // percent vs previous stocked month, 1 decimal; 0 when there is none
}

// StockTrend reports monthly stocked quantity per product for one year and
// the month-over-month percentage change. The change compares against the
// previous month that has stock data for the product; the first such month
// (or a previous month with zero stock) reports 0. Work orders whose product
// is missing from the products table keep their rows under an empty name.
func StockTrend(s *Snapshot, year int) ([]StockTrendRow, error) {
	if err := s.validate(tabWorkOrders | tabProducts); err != nil {
		return nil, err
	}

	names := s.productNameByID()

	type key struct {
		product string
		month   int
	}
	totals := make(map[key]int)
	for _, w := range s.WorkOrders {
		if w.ModifiedDate.Year() != year {
			continue
		}
		name := names[w.ProductID] // left join: missing product keeps the row
		totals[key{product: name, month: int(w.ModifiedDate.Month())}] += w.StockedQty
	}

	byProduct := make(map[string][]StockTrendRow)
	for k, qty := range totals {
		byProduct[k.product] = append(byProduct[k.product], StockTrendRow{
			Product: k.product,
			Month:   k.month,
			Year:    year,
			Stocked: qty,
		})
	}

	products := make([]string, 0, len(byProduct))
	for p := range byProduct {
		products = append(products, p)
	}
	sort.Strings(products)

	out := make([]StockTrendRow, 0, len(totals))
	for _, p := range products {
		rows := byProduct[p]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
		for i := range rows {
			if i == 0 || rows[i-1].Stocked == 0 {
				rows[i].PctChange = decimal.Zero
				continue
			}
			rows[i].PctChange = oneHundred.
				Mul(decimal.NewFromInt(int64(rows[i].Stocked)).
					Div(decimal.NewFromInt(int64(rows[i-1].Stocked))).
					Sub(decimal.NewFromInt(1))).
				Round(1)
		}
		// months descending in the output
		for i := len(rows) - 1; i >= 0; i-- {
			out = append(out, rows[i])
		}
	}
	return out, nil
}

// StockSalesRow relates a product's stocked quantity to its sold quantity in
// one month. Ratio is nil when the product had no sales that month: the
// quotient is undefined, and nil is the documented sentinel for it.
type StockSalesRow struct {
	Month   int
	Year    int
	Product string
	Stock   int
	Sales   int
	Ratio   *decimal.Decimal // stock/sales rounded to 2 decimals, nil when sales is 0
}

// StockSalesRatio reports the monthly stock-to-sales ratio per product for
// one year. Sales and stock are aggregated independently and combined with a
// full outer join, so a product-month with stock but no sales, or sales but
// no stock, still appears; the missing side counts as 0.
func StockSalesRatio(s *Snapshot, year int) ([]StockSalesRow, error) {
	if err := s.validate(tabOrderDetails | tabWorkOrders | tabProducts); err != nil {
		return nil, err
	}

	names := s.productNameByID()

	type key struct {
		product string
		month   int
	}
	sales := make(map[key]int)
	for _, d := range s.OrderDetails {
		if d.ModifiedDate.Year() != year {
			continue
		}
		sales[key{product: names[d.ProductID], month: int(d.ModifiedDate.Month())}] += d.OrderQty
	}
	stock := make(map[key]int)
	for _, w := range s.WorkOrders {
		if w.ModifiedDate.Year() != year {
			continue
		}
		stock[key{product: names[w.ProductID], month: int(w.ModifiedDate.Month())}] += w.StockedQty
	}

	keys := make(map[key]struct{}, len(sales)+len(stock))
	for k := range sales {
		keys[k] = struct{}{}
	}
	for k := range stock {
		keys[k] = struct{}{}
	}

	rows := make([]StockSalesRow, 0, len(keys))
	for k := range keys {
		row := StockSalesRow{
			Month:   k.month,
			Year:    year,
			Product: k.product,
			Stock:   stock[k],
			Sales:   sales[k],
		}
		if row.Sales > 0 {
			ratio := decimal.NewFromInt(int64(row.Stock)).
				Div(decimal.NewFromInt(int64(row.Sales))).
				Round(2)
			row.Ratio = &ratio
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month > rows[j].Month
		}
		ri, rj := rows[i].Ratio, rows[j].Ratio
		switch {
		case ri != nil && rj != nil && !ri.Equal(*rj):
			return ri.GreaterThan(*rj)
		case ri != nil && rj == nil:
			return true // undefined ratios sort last within a month
		case ri == nil && rj != nil:
			return false
		}
		return rows[i].Product < rows[j].Product
	})
	return rows, nil
}
