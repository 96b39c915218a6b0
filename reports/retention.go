package reports

import (
	"fmt"
	"sort"

	"github.com/adventureworks/models"
)

// RetentionRow is one cell of the cohort grid: how many customers whose first
// shipped order fell in CohortMonth came back MonthOffset months later.
type RetentionRow struct {
	CohortMonth int // 1-12, month of the customers' first shipped order
	MonthOffset int // months since the cohort month
	OffsetLabel string
	Customers   int
}

// CustomerRetention builds the monthly retention cohort for one calendar
// year, counting shipped orders only. Each customer's cohort is the month of
// their first shipped order inside the year; every further active month adds
// the customer to that cohort's offset cell. Monthly activity is collapsed
// per customer before the first month is picked, so duplicate rows for the
// same month cannot make the choice ambiguous. Rows carry both the numeric
// offset and its "M - N" display label and sort numerically.
func CustomerRetention(s *Snapshot, year int) ([]RetentionRow, error) {
	if err := s.validate(tabOrderHeaders); err != nil {
		return nil, err
	}

	// distinct active months per customer
	months := make(map[uint]map[int]struct{})
	for _, h := range s.OrderHeaders {
		if h.Status != models.SalesOrderShipped || h.ModifiedDate.Year() != year {
			continue
		}
		m := int(h.ModifiedDate.Month())
		if months[h.CustomerID] == nil {
			months[h.CustomerID] = make(map[int]struct{})
		}
		months[h.CustomerID][m] = struct{}{}
	}

	type cell struct {
		cohort int
		offset int
	}
	counts := make(map[cell]int)
	for _, active := range months {
		first := 13
		for m := range active {
			if m < first {
				first = m
			}
		}
		for m := range active {
			counts[cell{cohort: first, offset: m - first}]++
		}
	}

	rows := make([]RetentionRow, 0, len(counts))
	for c, n := range counts {
		rows = append(rows, RetentionRow{
			CohortMonth: c.cohort,
			MonthOffset: c.offset,
			OffsetLabel: fmt.Sprintf("M - %d", c.offset),
			Customers:   n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CohortMonth != rows[j].CohortMonth {
			return rows[i].CohortMonth < rows[j].CohortMonth
		}
		return rows[i].MonthOffset < rows[j].MonthOffset
	})
	return rows, nil
}
