// Package normalize converts free-text phone numbers and delivery
// date/time strings into their canonical stored forms. All functions are
// pure; a failed extraction is reported through the ok result, never an
// error, because the caller is expected to re-prompt the user.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the canonical delivery timestamp format. It is used
// both for storage and for re-validating values that were already
// normalized once.
const TimestampLayout = "2006-01-02 15:04"

const (
	defaultHour   = 10
	defaultMinute = 0
)

var phonePattern = regexp.MustCompile(`\+?\d{8,15}`)

// datePattern matches "<day> <month-name> <year>" optionally followed by
// "jam <hour>.<minute>" or "<hour>:<minute>" against lowercased input.
var datePattern = regexp.MustCompile(`(\d{1,2}) ([a-z]+) (\d{4})(?: (?:jam )?(\d{1,2})[.:](\d{2}))?`)

// months maps lowercase Indonesian month names to their ordinal. Other
// locales can be supported by extending this table; the parsing algorithm
// itself is locale-agnostic.
var months = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maret":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"agustus":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"desember":  time.December,
}

// ExtractPhone scans text for the first contiguous run of 8 to 15 digits,
// optionally prefixed with '+'. It returns the match and true, or "" and
// false when no phone number is present.
func ExtractPhone(text string) (string, bool) {
	match := phonePattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// ExtractDate resolves a free-text delivery date into the canonical
// "YYYY-MM-DD HH:MM" form. Resolution is two-stage: first a localized
// "<day> <month-name> <year> [jam <hour>.<minute>]" pattern (hour defaults
// to 10:00 when omitted), then a strict parse of the canonical layout so
// previously normalized values round-trip through the same function.
// Combinations that do not form a valid calendar date fail instead of
// rolling over into the next month.
func ExtractDate(text string) (string, bool) {
	m := datePattern.FindStringSubmatch(strings.ToLower(text))
	if m != nil {
		return buildTimestamp(m)
	}

	t, err := time.Parse(TimestampLayout, strings.TrimSpace(text))
	if err != nil {
		return "", false
	}
	return t.Format(TimestampLayout), true
}

func buildTimestamp(m []string) (string, bool) {
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])

	month, ok := months[m[2]]
	if !ok {
		return "", false
	}

	hour, minute := defaultHour, defaultMinute
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
	}
	if m[5] != "" {
		minute, _ = strconv.Atoi(m[5])
	}
	if hour > 23 || minute > 59 {
		return "", false
	}

	// time.Date normalizes out-of-range days (31 Februari becomes 3
	// Maret), so compare the components back to reject invalid dates.
	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return "", false
	}

	return t.Format(TimestampLayout), true
}
