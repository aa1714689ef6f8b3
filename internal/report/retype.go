package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	groupedNumber = regexp.MustCompile(`^[+-]?\d{1,3}(\.\d{3})+(,\d+)?$`)
	plainNumber   = regexp.MustCompile(`^[+-]?\d+(,\d+)?$`)
	dateDigits    = regexp.MustCompile(`^\d{8}$`)
)

// ParseDate parses a DDMMYYYY value such as "28012024".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dateDigits.MatchString(s) {
		return time.Time{}, fmt.Errorf("expected 8 digits DDMMYYYY, got %q", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseNumber parses a number written with "." as thousands separator and
// "," as decimal separator, e.g. "1.234,5".
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !groupedNumber.MatchString(s) && !plainNumber.MatchString(s) {
		return 0, fmt.Errorf("not a number in 1.234,5 notation: %q", s)
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}
