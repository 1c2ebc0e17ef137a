// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package datefmt parses the date formats accepted at the API boundary.
//
// The admin dashboard historically sent both bare dates and full ISO
// timestamps, so every date field accepts either.
package datefmt

import (
	"fmt"
	"time"
)

// layouts are tried in order. RFC3339 first: it is what the current
// dashboard sends.
var layouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Parse converts an ISO date or timestamp string into a time.Time.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("datefmt: %q is not a valid date", value)
}
