package reports

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// decComparer lets go-cmp compare decimal values by numeric equality instead
// of internal representation (1.5 vs 1.50).
var decComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }
