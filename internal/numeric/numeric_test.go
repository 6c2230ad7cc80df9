package numeric_test

import (
	"errors"
	"math"
	"testing"

	"github.com/calibra-quiz/backend/internal/numeric"
)

func TestParse_AcceptedForms(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"40,000,000", 40_000_000},
		{"40.5", 40.5},
		{"40,000,000.25", 40_000_000.25},
		{".5", 0.5},
		{"42.", 42},
		{"10K", 10_000},
		{"10k", 10_000},
		{"10M", 10_000_000},
		{"3.2B", 3_200_000_000},
		{"1.2T", 1_200_000_000_000},
		{"3,200K", 3_200_000},
		{"3200K", 3_200_000},
		{"1,200", 1_200},
		{"  1200  ", 1_200},
		{"1_200", 1_200},
		{"1 200", 1_200},
		{"-40.5", -40.5},
		{"+40.5", 40.5},
		{"-10K", -10_000},
		{"0", 0},
	}

	for _, tc := range cases {
		got, err := numeric.Parse(tc.raw)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParse_RejectedForms(t *testing.T) {
	cases := []string{
		"",
		"   ",
		",",
		"1,,000",
		"1..0",
		",100",
		"100,",
		"12,34",
		"1,23",
		"1,2345",
		"abc",
		"1.2.3",
		"10KK",
		"10K5",
		"K",
		"-",
		"+",
		"1.2,3",
		"$100",
		"50%",
	}

	for _, raw := range cases {
		if _, err := numeric.Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want rejection", raw)
		}
		if _, err := numeric.Parse(raw); err != nil && !errors.Is(err, numeric.ErrNotANumber) {
			t.Errorf("Parse(%q) error = %v, want ErrNotANumber", raw, err)
		}
	}
}

func TestParse_ShorthandAppliesAfterSign(t *testing.T) {
	got, err := numeric.Parse("-3.2B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -3_200_000_000 {
		t.Errorf("Parse(-3.2B) = %v, want -3200000000", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{13_637_000_000, "13,637,000,000"},
		{74.260, "74.26"},
		{4.2441, "4.2441"},
		{0.5, "0.5"},
		{1_200, "1,200"},
		{0, "0"},
		{-1_234.5, "-1,234.5"},
		{615, "615"},
	}

	for _, tc := range cases {
		if got := numeric.Format(&tc.value); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormat_Nil(t *testing.T) {
	if got := numeric.Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}
}

func TestFormatAny_Fallback(t *testing.T) {
	if got := numeric.FormatAny("n/a"); got != "n/a" {
		t.Errorf("FormatAny(string) = %q, want literal form", got)
	}
	if got := numeric.FormatAny(nil); got != "" {
		t.Errorf("FormatAny(nil) = %q, want empty string", got)
	}
	if got := numeric.FormatAny(1_200); got != "1,200" {
		t.Errorf("FormatAny(int) = %q, want 1,200", got)
	}
}

func TestFormat_RoundTripsParsedInput(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"40,000,000", "40,000,000"},
		{"3.2B", "3,200,000,000"},
		{"74.26", "74.26"},
		{".5", "0.5"},
		{"42.", "42"},
	}

	for _, tc := range cases {
		v, err := numeric.Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.raw, err)
		}
		if got := numeric.Format(&v); got != tc.want {
			t.Errorf("Format(Parse(%q)) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{59.94, 59.9},
		{59.95, 60.0},
		{100.0 / 3, 33.3},
		{0, 0},
	}

	for _, tc := range cases {
		if got := numeric.Round1(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Round1(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
