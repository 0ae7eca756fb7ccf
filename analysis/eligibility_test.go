package analysis

import (
	"testing"
	"time"
)

func TestCheckEligibility(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}
	day := 24 * time.Hour

	cases := []struct {
		name string
		last *time.Time
		want Eligibility
	}{
		{"never analyzed", nil, Eligibility{Eligible: true}},
		{"exactly thirty days", at(30 * day), Eligibility{Eligible: true}},
		{"long ago", at(400 * day), Eligibility{Eligible: true}},
		{"yesterday", at(day), Eligibility{DaysRemaining: 29}},
		{"partial day rounds down", at(29*day + 23*time.Hour), Eligibility{DaysRemaining: 1}},
		{"just now", at(0), Eligibility{DaysRemaining: 30}},
	}
	for _, tc := range cases {
		if got := CheckEligibility(tc.last, now); got != tc.want {
			t.Fatalf("%s: got=%+v want=%+v", tc.name, got, tc.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2024-01-15T10:00:00Z",
		"2024-01-15T10:00:00.000Z",
		"2024-01-15T11:00:00+01:00",
		"2024-01-15T10:00:00",
		" 2024-01-15T10:00:00.000000 ",
	} {
		got, err := ParseTimestamp(in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseTimestamp(%q)=%v want=%v", in, got, want)
		}
	}

	d, err := ParseTimestamp("2024-01-15")
	if err != nil || !d.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date only: %v, %v", d, err)
	}
	if _, err := ParseTimestamp("last tuesday"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestIsoTimestamp_MicrosecondsAndOffset(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 1, 12, 0, 0, 123456789, time.FixedZone("", 2*3600))
	if got := isoTimestamp(ts); got != "2025-03-01T12:00:00.123456+02:00" {
		t.Fatalf("got=%q", got)
	}
}
