package reports

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// seasonalDiscountMatch is the case-insensitive needle a special offer's type
// must contain to count as a seasonal discount.
const seasonalDiscountMatch = "seasonal discount"

// DiscountCostRow is the yearly cost of seasonal discounts for one subcategory.
type DiscountCostRow struct {
	Year        int
	Subcategory string
	Cost        decimal.Decimal
}

// SeasonalDiscountCost reports what seasonal discounts cost per (year,
// subcategory). An order line's cost is OrderQty x DiscountPct x UnitPrice.
// Lines whose offer type does not contain "seasonal discount" (any casing)
// are excluded, as are lines without a resolvable offer or subcategory.
// The source extract repeats some order lines verbatim, so exact-duplicate
// (date, subcategory, pct, type, cost) combinations are collapsed to one
// before aggregation.
func SeasonalDiscountCost(s *Snapshot) ([]DiscountCostRow, error) {
	if err := s.validate(tabOrderDetails | tabSpecialOffers | tabProducts | tabSubcategories); err != nil {
		return nil, err
	}

	offers := s.offerByID()
	subNames := s.subcategoryNameByProduct()

	type lineKey struct {
		date        time.Time
		subcategory string
		pct         string
		offerType   string
		cost        string
	}
	type groupKey struct {
		year        int
		subcategory string
	}
	seen := make(map[lineKey]struct{})
	totals := make(map[groupKey]decimal.Decimal)

	for _, d := range s.OrderDetails {
		offer, ok := offers[d.SpecialOfferID]
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(offer.Type), seasonalDiscountMatch) {
			continue
		}
		sub, ok := subNames[d.ProductID]
		if !ok {
			continue
		}
		cost := decimal.NewFromInt(int64(d.OrderQty)).
			Mul(offer.DiscountPct).
			Mul(d.UnitPrice)
		lk := lineKey{
			date:        d.ModifiedDate,
			subcategory: sub,
			pct:         offer.DiscountPct.String(),
			offerType:   offer.Type,
			cost:        cost.String(),
		}
		if _, dup := seen[lk]; dup {
			continue
		}
		seen[lk] = struct{}{}

		gk := groupKey{year: d.ModifiedDate.Year(), subcategory: sub}
		totals[gk] = totals[gk].Add(cost)
	}

	rows := make([]DiscountCostRow, 0, len(totals))
	for k, cost := range totals {
		rows = append(rows, DiscountCostRow{Year: k.year, Subcategory: k.subcategory, Cost: cost})
	}
	// The grouping imposes no order; sort for deterministic output.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Subcategory < rows[j].Subcategory
	})
	return rows, nil
}
