package utils

import "time"

// ParseOptionalDate parses an ISO-8601 date string. Empty or unparseable
// input yields nil: dates are optional on campaign rows and a broken date
// must degrade to "undated", never to an error.
func ParseOptionalDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil
	}

	return &date
}
