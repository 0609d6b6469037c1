// Package tle parses NORAD two-line element (TLE) records. Only the fields
// needed to build a classical element set are extracted; the checksum and
// drag terms used by perturbation models are ignored.
package tle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-orbits/internal/epoch"
)

var (
	// ErrInvalidLineMarker reports a line that does not begin with its
	// expected "1" or "2" marker.
	ErrInvalidLineMarker = errors.New("tle: line does not begin with its line-number marker")

	// ErrIncompleteRecord reports fewer than two non-empty lines.
	ErrIncompleteRecord = errors.New("tle: record requires two non-empty lines")

	// ErrMalformedField reports a field that failed to parse as a number.
	ErrMalformedField = errors.New("tle: malformed field")
)

// Record holds the orbital parameters read from a two-line element set.
// Angles are in degrees as printed in the record; MeanMotion is in
// revolutions per day.
type Record struct {
	EpochYear    int     // four-digit year after rollover expansion
	EpochDay     float64 // fractional day of year, 1-based
	Inclination  float64
	RAAN         float64
	Eccentricity float64
	ArgPerigee   float64
	MeanAnomaly  float64
	MeanMotion   float64
	Epoch        epoch.Epoch
}

// field describes one fixed-column value of the TLE format. Columns are
// 1-indexed and inclusive, following the format's printed definition.
type field struct {
	name     string
	line     int // 1 or 2
	start    int
	end      int
	implied0 bool // digits are a fractional part after an implicit "0."
	assign   func(r *Record, v float64)
}

// fields is the column contract of the record. The epoch year is two
// digits; expansion to a four-digit year happens after extraction.
var fields = []field{
	{name: "epoch year", line: 1, start: 19, end: 20,
		assign: func(r *Record, v float64) { r.EpochYear = expandYear(int(v)) }},
	{name: "epoch day", line: 1, start: 21, end: 32,
		assign: func(r *Record, v float64) { r.EpochDay = v }},
	{name: "inclination", line: 2, start: 9, end: 16,
		assign: func(r *Record, v float64) { r.Inclination = v }},
	{name: "raan", line: 2, start: 18, end: 25,
		assign: func(r *Record, v float64) { r.RAAN = v }},
	{name: "eccentricity", line: 2, start: 27, end: 33, implied0: true,
		assign: func(r *Record, v float64) { r.Eccentricity = v }},
	{name: "argument of perigee", line: 2, start: 35, end: 42,
		assign: func(r *Record, v float64) { r.ArgPerigee = v }},
	{name: "mean anomaly", line: 2, start: 44, end: 51,
		assign: func(r *Record, v float64) { r.MeanAnomaly = v }},
	{name: "mean motion", line: 2, start: 53, end: 63,
		assign: func(r *Record, v float64) { r.MeanMotion = v }},
}

// Parse extracts a Record from the two lines of a TLE. Parsing is atomic:
// on any error no partial Record is returned.
func Parse(line1, line2 string) (Record, error) {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)

	if line1 == "" || line2 == "" {
		return Record{}, ErrIncompleteRecord
	}
	if !strings.HasPrefix(line1, "1") {
		return Record{}, fmt.Errorf("%w: line 1 starts with %q", ErrInvalidLineMarker, firstRune(line1))
	}
	if !strings.HasPrefix(line2, "2") {
		return Record{}, fmt.Errorf("%w: line 2 starts with %q", ErrInvalidLineMarker, firstRune(line2))
	}

	lines := [2]string{line1, line2}

	var rec Record
	for _, f := range fields {
		raw := lines[f.line-1]
		if len(raw) < f.end {
			return Record{}, fmt.Errorf("%w: %s: line %d shorter than column %d",
				ErrMalformedField, f.name, f.line, f.end)
		}
		text := strings.TrimSpace(raw[f.start-1 : f.end])
		if f.implied0 {
			text = "0." + text
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %s: %q", ErrMalformedField, f.name, text)
		}
		f.assign(&rec, v)
	}

	rec.Epoch = epochFromYearDay(rec.EpochYear, rec.EpochDay)
	return rec, nil
}

// ParseLines splits a block of text into its first two marker-prefixed lines
// and parses them. Satellite name headers (the optional "line 0") and blank
// lines are skipped.
func ParseLines(text string) (Record, error) {
	var line1, line2 string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
		case line1 == "" && strings.HasPrefix(line, "1 "):
			line1 = line
		case line2 == "" && strings.HasPrefix(line, "2 "):
			line2 = line
		}
	}
	if line1 == "" || line2 == "" {
		return Record{}, ErrIncompleteRecord
	}
	return Parse(line1, line2)
}

// expandYear applies the two-digit year rollover used by the TLE format:
// 57 through 99 belong to the 1900s, 00 through 56 to the 2000s.
func expandYear(yy int) int {
	if yy < 57 {
		return 2000 + yy
	}
	return 1900 + yy
}

// epochFromYearDay converts a year plus 1-based fractional day of year into
// an epoch. Day 1.0 is January 1 at 00:00 UTC.
func epochFromYearDay(year int, day float64) epoch.Epoch {
	jan1 := epoch.FromTime(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	e, _ := epoch.FromJD(jan1.JD() + day - 1)
	return e
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
