package tle

import (
	"errors"
	"math"
	"testing"
	"time"
)

const (
	issLine1 = "1 25544U 98067A   24001.00000000  .00016717  00000-0  10270-3 0  9994"
	issLine2 = "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.50103472202145"
)

func TestParseISS(t *testing.T) {
	rec, err := Parse(issLine1, issLine2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"epoch day", rec.EpochDay, 1.0, 1e-9},
		{"inclination", rec.Inclination, 51.6416, 1e-6},
		{"raan", rec.RAAN, 247.4627, 1e-6},
		{"eccentricity", rec.Eccentricity, 0.0006703, 1e-9},
		{"argument of perigee", rec.ArgPerigee, 130.5360, 1e-6},
		{"mean anomaly", rec.MeanAnomaly, 325.0288, 1e-6},
		{"mean motion", rec.MeanMotion, 15.50103472, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Errorf("got %v, want %v (±%v)", tt.got, tt.want, tt.tol)
			}
		})
	}

	if rec.EpochYear != 2024 {
		t.Errorf("EpochYear = %d, want 2024", rec.EpochYear)
	}
}

func TestParseEpoch(t *testing.T) {
	rec, err := Parse(issLine1, issLine2)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Year 24, day 001.00000000 is 2024-01-01T00:00:00Z, JD 2460310.5.
	if got := rec.Epoch.JD(); math.Abs(got-2460310.5) > 1e-6 {
		t.Errorf("Epoch.JD() = %v, want 2460310.5", got)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := rec.Epoch.Time(); !got.Equal(want) {
		t.Errorf("Epoch.Time() = %v, want %v", got, want)
	}
}

func TestYearRollover(t *testing.T) {
	tests := []struct {
		yy   int
		want int
	}{
		{0, 2000},
		{24, 2024},
		{56, 2056},
		{57, 1957},
		{98, 1998},
		{99, 1999},
	}

	for _, tt := range tests {
		if got := expandYear(tt.yy); got != tt.want {
			t.Errorf("expandYear(%d) = %d, want %d", tt.yy, got, tt.want)
		}
	}
}

func TestFractionalEpochDay(t *testing.T) {
	// Day 32.5 of a non-leap year is February 1 at 12:00 UTC.
	e := epochFromYearDay(2023, 32.5)
	want := time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC)
	if got := e.Time(); !got.Equal(want) {
		t.Errorf("epochFromYearDay(2023, 32.5) = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		line1   string
		line2   string
		wantErr error
	}{
		{"empty line 1", "", issLine2, ErrIncompleteRecord},
		{"empty line 2", issLine1, "   ", ErrIncompleteRecord},
		{"swapped lines", issLine2, issLine1, ErrInvalidLineMarker},
		{"bad marker", "X" + issLine1[1:], issLine2, ErrInvalidLineMarker},
		{"truncated line 2", issLine1, issLine2[:40], ErrMalformedField},
		{"garbage field", issLine1, issLine2[:17] + "24x.4627" + issLine2[25:], ErrMalformedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.line1, tt.line2)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse error = %v, want %v", err, tt.wantErr)
			}
			if rec != (Record{}) {
				t.Errorf("failed Parse returned partial record: %+v", rec)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	text := "ISS (ZARYA)\n" + issLine1 + "\n" + issLine2 + "\n"
	rec, err := ParseLines(text)
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if rec.EpochYear != 2024 {
		t.Errorf("EpochYear = %d, want 2024", rec.EpochYear)
	}

	if _, err := ParseLines("ISS (ZARYA)\n" + issLine1 + "\n"); !errors.Is(err, ErrIncompleteRecord) {
		t.Errorf("one-line record error = %v, want ErrIncompleteRecord", err)
	}
}

func TestWhitespaceTolerance(t *testing.T) {
	rec, err := Parse("  "+issLine1+"  ", "\t"+issLine2+"\n")
	if err != nil {
		t.Fatalf("Parse with surrounding whitespace: %v", err)
	}
	if math.Abs(rec.MeanMotion-15.50103472) > 1e-9 {
		t.Errorf("MeanMotion = %v, want 15.50103472", rec.MeanMotion)
	}
}
