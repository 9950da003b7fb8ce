package render

import "time"

// FormatDate converts an ISO "YYYY-MM" date into the display form "Jan 2006".
// An empty date means the role is current and renders as "Present". Dates that
// do not parse pass through unchanged rather than failing the render.
func FormatDate(isoDate string) string {
	if isoDate == "" {
		return "Present"
	}
	t, err := time.Parse("2006-01", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Jan 2006")
}

// FormatDateRange renders a start/end pair as "Mar 2022 – Present".
// A nil end date means current.
func FormatDateRange(start string, end *string) string {
	endDisplay := "Present"
	if end != nil {
		endDisplay = FormatDate(*end)
	}
	return FormatDate(start) + " – " + endDisplay
}
