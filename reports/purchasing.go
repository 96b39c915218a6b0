package reports

import (
	"sort"

	"github.com/adventureworks/models"
	"github.com/shopspring/decimal"
)

// BacklogRow is the pending purchase-order backlog for one (year, status).
type BacklogRow struct {
	Year       int
	Status     models.PurchaseOrderStatus
	OrderCount int
	Value      decimal.Decimal
}

// PurchaseOrderBacklog reports how many purchase orders were still pending in
// the given year and what they are worth. Grouping is by (year, status), so
// the result is a single row when any pending orders exist and empty
// otherwise.
func PurchaseOrderBacklog(s *Snapshot, year int) ([]BacklogRow, error) {
	if err := s.validate(tabPurchaseOrders); err != nil {
		return nil, err
	}

	type key struct {
		year   int
		status models.PurchaseOrderStatus
	}
	type agg struct {
		orders map[uint]struct{}
		value  decimal.Decimal
	}
	groups := make(map[key]*agg)
	for _, p := range s.PurchaseOrders {
		if p.ModifiedDate.Year() != year || p.Status != models.PurchaseOrderPending {
			continue
		}
		k := key{year: year, status: p.Status}
		a := groups[k]
		if a == nil {
			a = &agg{orders: make(map[uint]struct{}), value: decimal.Zero}
			groups[k] = a
		}
		a.orders[p.PurchaseOrderID] = struct{}{}
		a.value = a.value.Add(p.TotalDue)
	}

	rows := make([]BacklogRow, 0, len(groups))
	for k, a := range groups {
		rows = append(rows, BacklogRow{
			Year:       k.year,
			Status:     k.status,
			OrderCount: len(a.orders),
			Value:      a.value,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Status < rows[j].Status })
	return rows, nil
}
