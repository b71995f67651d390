package services

import (
	"fmt"
	"time"
)

// DateLayout is the day format accepted on the command line and in exports
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD day in UTC
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return parsed, nil
}

