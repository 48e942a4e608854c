package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the storage format for timestamps. The width is fixed
// (nanoseconds always padded) so that lexicographic ordering of the stored
// text matches chronological ordering.
const TimeLayout = "2006-01-02 15:04:05.000000000"

// ParseTime parses a stored timestamp. It accepts the fixed-width layout,
// the bare CURRENT_TIMESTAMP format, and RFC3339.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{TimeLayout, "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse timestamp %q", str)
}

// FormatTime renders a timestamp in the storage format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseDecimal parses a stored decimal column value.
func ParseDecimal(str string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse decimal %q: %w", str, err)
	}
	return d, nil
}
