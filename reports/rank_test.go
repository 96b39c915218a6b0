package reports

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDenseRanks(t *testing.T) {
	cases := []struct {
		name   string
		values []int // already sorted descending
		want   []int
	}{
		{"empty", nil, []int{}},
		{"distinct", []int{30, 20, 10}, []int{1, 2, 3}},
		{"leading tie", []int{30, 30, 10}, []int{1, 1, 2}},
		{"tie does not skip ranks", []int{30, 30, 20, 10}, []int{1, 1, 2, 3}},
		{"all tied", []int{5, 5, 5}, []int{1, 1, 1}},
	}
	for _, tc := range cases {
		got := denseRanks(len(tc.values), func(i int) bool {
			return tc.values[i] == tc.values[i-1]
		})
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestMonthStartAndLabel(t *testing.T) {
	d := time.Date(2013, time.June, 29, 15, 4, 5, 0, time.UTC)
	start := monthStart(d)
	if !start.Equal(time.Date(2013, time.June, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month start: %v", start)
	}
	if got := monthLabel(start); got != "Jun 2013" {
		t.Fatalf("unexpected label: %q", got)
	}
}
