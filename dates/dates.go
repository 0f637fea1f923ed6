// Package dates resolves civil calendar dates in an explicit timezone.
// Every resolution takes a reference instant and a timezone identifier;
// nothing here ever consults device-local time implicitly.
package dates

import "time"

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Resolve formats the reference instant as a YYYY-MM-DD date in the civil
// calendar of the given IANA timezone. An unrecognized timezone falls back
// to UTC rather than failing; the date an interaction belongs to must
// always resolve.
func Resolve(ref time.Time, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return ref.In(loc).Format(Layout)
}

// Tomorrow adds exactly one calendar day to a YYYY-MM-DD date string,
// independent of time-of-day. Malformed input is returned unchanged.
func Tomorrow(date string) string {
	d, err := time.ParseInLocation(Layout, date, time.UTC)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, 1).Format(Layout)
}

// SameDay reports whether two instants fall on the same civil date in the
// given timezone.
func SameDay(a, b time.Time, timezone string) bool {
	return Resolve(a, timezone) == Resolve(b, timezone)
}

// Normalize parses a date string and reformats it as YYYY-MM-DD. Dates that
// do not parse are returned unchanged; the executor treats them as opaque.
func Normalize(date string) string {
	for _, layout := range []string{Layout, "2006-1-2", time.RFC3339} {
		if d, err := time.Parse(layout, date); err == nil {
			return d.Format(Layout)
		}
	}
	return date
}
