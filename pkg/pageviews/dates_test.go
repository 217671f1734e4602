package pageviews

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"20230101", "20200229", "19991231", "20231015"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if got := FormatDate(d); got != s+"00" {
			t.Fatalf("round trip %q: got %q", s, got)
		}
	}
}

func TestParseDate_KeepsHour(t *testing.T) {
	d, err := ParseDate("2023010517")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2023, 1, 5, 17, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Fatalf("expected %s, got %s", want, d)
	}
}

func TestParseDate_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "too short", in: "202301"},
		{name: "nine digits", in: "202301011"},
		{name: "too long", in: "202301010000"},
		{name: "not numeric", in: "2023-01-01"},
		{name: "bad month", in: "20231301"},
		{name: "bad day", in: "20230230"},
		{name: "bad hour", in: "2023010125"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDate(tc.in)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

func TestTimestampsBetween_Daily(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)

	var got []time.Time
	for ts := range TimestampsBetween(start, end, Increment{Days: 1}) {
		got = append(got, ts)
	}
	wantDays := int(end.Sub(start).Hours() / 24)
	if len(got) != wantDays {
		t.Fatalf("expected %d timestamps, got %d", wantDays, len(got))
	}
	if !got[0].Equal(start) {
		t.Fatalf("first timestamp %s, want %s", got[0], start)
	}
	for i := 1; i < len(got); i++ {
		if !got[i].After(got[i-1]) {
			t.Fatalf("not strictly increasing at %d: %s then %s", i, got[i-1], got[i])
		}
	}
	if !got[len(got)-1].Before(end) {
		t.Fatalf("last timestamp %s not before end %s", got[len(got)-1], end)
	}
}

func TestTimestampsBetween_KeepsHourOfStart(t *testing.T) {
	start := time.Date(2023, 1, 1, 6, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)
	n := 0
	for ts := range TimestampsBetween(start, end, Increment{Days: 1}) {
		if ts.Hour() != 6 {
			t.Fatalf("expected hour 6, got %s", ts)
		}
		n++
	}
	if n != 3 {
		t.Fatalf("expected 3 timestamps, got %d", n)
	}
}

func TestTimestampsBetween_Monthly(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	var got []time.Time
	for ts := range TimestampsBetween(start, end, Increment{Months: 1}) {
		got = append(got, ts)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 months, got %d", len(got))
	}
	for i, ts := range got {
		if ts.Day() != 1 || ts.Month() != time.Month(i+1) {
			t.Fatalf("month %d: got %s", i, ts)
		}
	}
}

func TestTimestampsBetween_MonthlyClampsDay(t *testing.T) {
	start := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	var got []string
	for ts := range TimestampsBetween(start, end, Increment{Months: 1}) {
		got = append(got, FormatDate(ts))
	}
	want := []string{"2023013100", "2023022800", "2023033100", "2023043000", "2023053100"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	// leap year
	var leap []string
	for ts := range TimestampsBetween(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Increment{Months: 1}) {
		leap = append(leap, FormatDate(ts))
	}
	if len(leap) != 3 || leap[1] != "2024022900" || leap[2] != "2024033000" {
		t.Fatalf("unexpected leap year steps %v", leap)
	}
}

func TestMonthStartOnOrAfter(t *testing.T) {
	tests := map[string]string{
		"2023010100": "2023010100",
		"2023011500": "2023020100",
		"2023010105": "2023020100",
		"2023121000": "2024010100",
	}
	for in, want := range tests {
		d, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if got := FormatDate(monthStartOnOrAfter(d)); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestTimestampsBetween_EmptyAndStop(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for range TimestampsBetween(start, start, Increment{Days: 1}) {
		t.Fatalf("expected no timestamps for empty range")
	}
	for range TimestampsBetween(start, start.AddDate(0, 0, 5), Increment{}) {
		t.Fatalf("expected no timestamps for zero increment")
	}
	n := 0
	for range TimestampsBetween(start, start.AddDate(1, 0, 0), Increment{Hours: 1}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected early stop after 3, got %d", n)
	}
}

func TestResolveRange_Defaults(t *testing.T) {
	today := time.Date(2024, 3, 10, 15, 42, 0, 0, time.UTC)

	s, e, err := resolveRange(nil, nil, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC); !e.Equal(want) {
		t.Fatalf("end: expected %s, got %s", want, e)
	}
	if want := time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC); !s.Equal(want) {
		t.Fatalf("start: expected %s, got %s", want, s)
	}

	s, e, err = resolveRange(nil, DateString("2023010300"), today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(e) != "2023010300" || FormatDate(s) != "2022120400" {
		t.Fatalf("unexpected range %s..%s", FormatDate(s), FormatDate(e))
	}

	if _, _, err := resolveRange(DateString("nope"), nil, today); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
