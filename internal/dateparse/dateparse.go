// Package dateparse implements the layered best-effort date coercion shared
// by the date and datetime field kinds. Candidates are tried in a fixed
// order: native time values, ISO-like strings, the DD.MM.YYYY locale form,
// numeric epoch timestamps, and Excel-style serial dates.
package dateparse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpoch anchors serial-date conversion at the day before the nominal
// 1900 epoch, reproducing the historical 1900 leap-year off-by-one: serial 1
// lands on 1899-12-31, not 1900-01-01.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// maxExcelSerial caps serial interpretation at year 9999.
const maxExcelSerial = 2958465

// millisThreshold separates epoch-millisecond timestamps from smaller
// numerics that read as Excel serials.
const millisThreshold = 1e10

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Coerce attempts to interpret raw as a point in time. The bool result is
// false when no layer accepts the input; callers apply their own bounds
// afterwards.
func Coerce(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		// An already-invalid date object stays invalid.
		if v.IsZero() {
			return time.Time{}, false
		}
		return v, true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return coerceString(v)
	default:
		if f, ok := asFloat(raw); ok {
			return coerceNumber(f)
		}
		return time.Time{}, false
	}
}

func coerceString(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, ok := parseLocale(s); ok {
		return t, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return coerceNumber(f)
	}
	return time.Time{}, false
}

// parseLocale reads the DD.MM.YYYY form. time.Date silently rolls invalid
// days over into the next month, so the parsed components are reconstructed
// and compared; any mismatch means the input named a day that does not
// exist and the whole parse fails.
func parseLocale(s string) (time.Time, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, errD := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func coerceNumber(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	if math.Abs(f) >= millisThreshold {
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return fromExcelSerial(f)
}

// fromExcelSerial converts a serial day count, fractional part included, from
// the quirky 1900 epoch.
func fromExcelSerial(serial float64) (time.Time, bool) {
	if serial < 1 || serial > maxExcelSerial {
		return time.Time{}, false
	}
	days := math.Trunc(serial)
	frac := serial - days
	t := excelEpoch.AddDate(0, 0, int(days))
	if frac > 0 {
		t = t.Add(time.Duration(math.Round(frac * 24 * float64(time.Hour))))
	}
	return t, true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
