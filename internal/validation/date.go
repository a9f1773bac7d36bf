// internal/validation/date.go
package validation

import "time"

// dateLayouts are the formats accepted for order dates and range bounds.
// The original service took anything JavaScript's Date constructor would
// swallow; this pins the formats the dashboard actually sends.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDate parses value against the accepted layouts.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateRange is the outcome of validating a summary query. Start and End are
// only meaningful when Valid is true.
type DateRange struct {
	Valid   bool
	Message string
	Start   time.Time
	End     time.Time
}

// ValidateDateRange checks the startDate/endDate query pair. Both values are
// required and must parse; there is deliberately no Start <= End check — an
// inverted range is accepted and matches no orders downstream.
func ValidateDateRange(startDate, endDate string) DateRange {
	if startDate == "" || endDate == "" {
		return DateRange{Message: "Both startDate and endDate are required"}
	}

	start, startOK := ParseDate(startDate)
	end, endOK := ParseDate(endDate)
	if !startOK || !endOK {
		return DateRange{Message: "Invalid date format"}
	}

	return DateRange{Valid: true, Start: start, End: end}
}
