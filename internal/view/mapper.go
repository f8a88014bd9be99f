package view

import "time"

// Display lookups for the closed status/priority enumerations. Unknown
// values fall through: labels echo the input verbatim, tag classes go empty
// so the template renders a plain tag.

// StatusLabel returns the human-readable form of an upstream status.
func StatusLabel(status string) string {
	switch status {
	case "PENDING":
		return "Pending"
	case "IN_PROGRESS":
		return "In Progress"
	case "COMPLETED":
		return "Completed"
	case "CANCELLED":
		return "Cancelled"
	default:
		return status
	}
}

// PriorityLabel returns the human-readable form of an upstream priority.
func PriorityLabel(priority string) string {
	switch priority {
	case "LOW":
		return "Low"
	case "MEDIUM":
		return "Medium"
	case "HIGH":
		return "High"
	case "URGENT":
		return "Urgent"
	default:
		return priority
	}
}

// StatusTagClass returns the GOV.UK tag colour class for a status.
func StatusTagClass(status string) string {
	switch status {
	case "PENDING":
		return "govuk-tag--grey"
	case "IN_PROGRESS":
		return "govuk-tag--blue"
	case "COMPLETED":
		return "govuk-tag--green"
	case "CANCELLED":
		return "govuk-tag--red"
	default:
		return ""
	}
}

// PriorityTagClass returns the GOV.UK tag colour class for a priority.
func PriorityTagClass(priority string) string {
	switch priority {
	case "LOW":
		return "govuk-tag--grey"
	case "MEDIUM":
		return "govuk-tag--yellow"
	case "HIGH":
		return "govuk-tag--orange"
	case "URGENT":
		return "govuk-tag--red"
	default:
		return ""
	}
}

// dateLayouts covers the formats the upstream API and datetime-local inputs
// produce. Zone-less values are treated as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date string as a long localized date with time, e.g.
// "25 December 2024 at 10:30". Missing dates read "Not set"; unparseable
// input is echoed back rather than rejected.
func FormatDate(raw string) string {
	if raw == "" {
		return "Not set"
	}
	parsed, ok := parseDate(raw)
	if !ok {
		return raw
	}
	return parsed.Format("2 January 2006 at 15:04")
}

// FormatDateForInput renders a date string in the fixed-width form a
// datetime-local input expects (YYYY-MM-DDTHH:MM). Missing dates become the
// empty string; unparseable input is echoed back.
func FormatDateForInput(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, ok := parseDate(raw)
	if !ok {
		return raw
	}
	return parsed.Format("2006-01-02T15:04")
}
