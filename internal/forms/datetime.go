package forms

import (
	"fmt"
	"time"
)

// CombineInstant pairs a calendar date with an "HH:MM" time-of-day into a
// UTC timestamp string of the exact form "YYYY-MM-DDTHH:MM:00Z".
//
// The year, month, and day are taken from the date value's own calendar
// fields, in whatever location the value carries. A picker resolves a
// clicked day into a local-timezone value; converting that value to UTC
// would shift the represented day depending on the host offset. Stamping
// the displayed fields directly as UTC keeps what the editor saw identical
// to what is stored.
//
// A nil date returns "" (incomplete, do not submit). hhmm is not validated;
// callers pass values from the paired time control, which always emits
// two-digit-colon-two-digit strings.
func CombineInstant(date *time.Time, hhmm string) string {
	if date == nil {
		return ""
	}
	y, m, d := date.Date()
	return fmt.Sprintf("%04d-%02d-%02dT%s:00Z", y, int(m), d, hhmm)
}
