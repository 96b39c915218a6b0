package reports

import "time"

// monthStart truncates t to the first instant of its calendar month, keeping
// the location. Used as the sortable form of a (month, year) pair.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthLabel renders a month the way the report tables display it, e.g. "Jun 2013".
func monthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}
