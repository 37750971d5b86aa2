package timeutil

import "time"

// The upstream quote APIs take dates as YYYY-MM-DD; the provider payloads and
// the display layer use DD/MM/YYYY.
const (
	// APIDateLayout is the wire format of the quote APIs.
	APIDateLayout = "2006-01-02"

	// DisplayDateLayout is the format the providers return and the UI shows.
	DisplayDateLayout = "02/01/2006"
)

// ShortDisplayDate trims a DD/MM/YYYY date to DD/MM for compact display.
// Input that does not parse as a display date is returned unchanged.
func ShortDisplayDate(date string) string {
	t, err := time.Parse(DisplayDateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01")
}
