package analytics

import "time"

// SameDay reports whether both timestamps fall on the same calendar day in loc.
// It compares year, month and day, not a 24h window.
func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight returns the start of t's calendar day, in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func dayKeyOf(t time.Time, loc *time.Location) dayKey {
	y, m, d := t.In(loc).Date()
	return dayKey{year: y, month: m, day: d}
}
