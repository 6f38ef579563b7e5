package dateparse

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCoerceISO(t *testing.T) {
	cases := map[string]time.Time{
		"2024-05-17":           date(2024, time.May, 17),
		"2024-05-17T10:30":     time.Date(2024, time.May, 17, 10, 30, 0, 0, time.UTC),
		"2024-05-17 10:30:15":  time.Date(2024, time.May, 17, 10, 30, 15, 0, time.UTC),
		"2024-05-17T10:30:15Z": time.Date(2024, time.May, 17, 10, 30, 15, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := Coerce(in)
		if !ok {
			t.Errorf("Coerce(%q) failed", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("Coerce(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCoerceLocale(t *testing.T) {
	got, ok := Coerce("17.05.2024")
	if !ok || !got.Equal(date(2024, time.May, 17)) {
		t.Fatalf("Coerce(17.05.2024) = %v, %v", got, ok)
	}
}

func TestCoerceLocaleRejectsOverflow(t *testing.T) {
	// time.Date would roll 31.02 into March; the parse must catch that.
	for _, in := range []string{"31.02.2024", "30.02.2023", "31.04.2024", "29.02.2023"} {
		if _, ok := Coerce(in); ok {
			t.Errorf("Coerce(%q) accepted a nonexistent day", in)
		}
	}
	if _, ok := Coerce("29.02.2024"); !ok {
		t.Error("Coerce(29.02.2024) rejected a real leap day")
	}
}

func TestCoerceExcelSerial(t *testing.T) {
	// Serial 1 is 1899-12-31: the epoch anchor sits one day before the
	// nominal 1900 epoch to reproduce the historical leap-year quirk.
	got, ok := Coerce(float64(1))
	if !ok || !got.Equal(date(1899, time.December, 31)) {
		t.Fatalf("Coerce(1) = %v, %v; want 1899-12-31", got, ok)
	}

	got, ok = Coerce(float64(2))
	if !ok || !got.Equal(date(1900, time.January, 1)) {
		t.Fatalf("Coerce(2) = %v, %v; want 1900-01-01", got, ok)
	}

	// Fractional serials carry the time of day.
	got, ok = Coerce(1.5)
	if !ok || !got.Equal(time.Date(1899, time.December, 31, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("Coerce(1.5) = %v, %v; want 1899-12-31 12:00", got, ok)
	}

	if _, ok := Coerce(float64(0)); ok {
		t.Error("Coerce(0) accepted a serial below the epoch")
	}
	if _, ok := Coerce(float64(maxExcelSerial + 1)); ok {
		t.Error("serial beyond year 9999 accepted")
	}
}

func TestCoerceEpochMillis(t *testing.T) {
	got, ok := Coerce(int64(1700000000000))
	want := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)
	if !ok || !got.Equal(want) {
		t.Fatalf("Coerce(1700000000000) = %v, %v; want %v", got, ok, want)
	}
}

func TestCoerceNative(t *testing.T) {
	now := time.Now()
	got, ok := Coerce(now)
	if !ok || !got.Equal(now) {
		t.Fatalf("Coerce(time.Time) = %v, %v", got, ok)
	}
	if _, ok := Coerce(time.Time{}); ok {
		t.Error("zero time accepted")
	}
}

func TestCoerceRejects(t *testing.T) {
	for _, in := range []any{"", "not a date", "17/05/2024", nil, true, []string{"x"}} {
		if _, ok := Coerce(in); ok {
			t.Errorf("Coerce(%v) unexpectedly succeeded", in)
		}
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, time.May, 17, 15, 4, 5, 0, time.UTC)
	if got := StartOfDay(at); !got.Equal(date(2024, time.May, 17)) {
		t.Errorf("StartOfDay = %v", got)
	}
	end := EndOfDay(at)
	if !end.After(at) || !end.Before(date(2024, time.May, 18)) {
		t.Errorf("EndOfDay = %v", end)
	}
}
