// Package epoch converts instants among the time scales used in astronomy:
// Julian Date, Modified Julian Date, J2000, Unix time, GPS time, and the
// Gregorian UTC calendar.
package epoch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	// UnixEpochJD is the Julian Date of 1970-01-01T00:00:00Z.
	UnixEpochJD = 2440587.5

	// J2000JD is the Julian Date of the J2000 reference epoch,
	// 2000-01-01T12:00:00 UTC.
	J2000JD = 2451545.0

	// MJDOffset relates Modified Julian Date to Julian Date: MJD = JD - MJDOffset.
	MJDOffset = 2400000.5

	// GPSUnixOffset is the Unix time of the GPS epoch, 1980-01-06T00:00:00Z.
	GPSUnixOffset = 315964800

	// SecondsPerDay is the length of a day in SI seconds (no leap seconds).
	SecondsPerDay = 86400

	millisPerDay = 86400000
)

var (
	// ErrInvalidTimestamp reports a Gregorian timestamp string that does not
	// parse as a calendar date.
	ErrInvalidTimestamp = errors.New("invalid gregorian timestamp")

	// ErrInvalidNumericInput reports a non-finite numeric time value.
	ErrInvalidNumericInput = errors.New("non-finite numeric time value")
)

// Epoch is an instant in time. The canonical representation is the Julian
// Date; every other representation is derived from it on demand, so all
// representations agree by construction.
type Epoch struct {
	jd float64
}

// FromJD constructs an Epoch from a Julian Date.
func FromJD(jd float64) (Epoch, error) {
	if !isFinite(jd) {
		return Epoch{}, fmt.Errorf("%w: jd=%v", ErrInvalidNumericInput, jd)
	}
	return Epoch{jd: jd}, nil
}

// FromMJD constructs an Epoch from a Modified Julian Date.
func FromMJD(mjd float64) (Epoch, error) {
	if !isFinite(mjd) {
		return Epoch{}, fmt.Errorf("%w: mjd=%v", ErrInvalidNumericInput, mjd)
	}
	return Epoch{jd: mjd + MJDOffset}, nil
}

// FromJ2000Days constructs an Epoch from days elapsed since J2000.
func FromJ2000Days(days float64) (Epoch, error) {
	if !isFinite(days) {
		return Epoch{}, fmt.Errorf("%w: j2000 days=%v", ErrInvalidNumericInput, days)
	}
	return Epoch{jd: J2000JD + days}, nil
}

// FromJ2000Seconds constructs an Epoch from seconds elapsed since J2000.
func FromJ2000Seconds(seconds float64) (Epoch, error) {
	if !isFinite(seconds) {
		return Epoch{}, fmt.Errorf("%w: j2000 seconds=%v", ErrInvalidNumericInput, seconds)
	}
	return Epoch{jd: J2000JD + seconds/SecondsPerDay}, nil
}

// FromUnix constructs an Epoch from Unix seconds.
func FromUnix(seconds float64) (Epoch, error) {
	if !isFinite(seconds) {
		return Epoch{}, fmt.Errorf("%w: unix seconds=%v", ErrInvalidNumericInput, seconds)
	}
	return Epoch{jd: seconds/SecondsPerDay + UnixEpochJD}, nil
}

// FromGPS constructs an Epoch from GPS seconds (seconds since the GPS epoch,
// 1980-01-06T00:00:00Z, ignoring leap seconds as the GPS scale does).
func FromGPS(seconds float64) (Epoch, error) {
	if !isFinite(seconds) {
		return Epoch{}, fmt.Errorf("%w: gps seconds=%v", ErrInvalidNumericInput, seconds)
	}
	return FromUnix(seconds + GPSUnixOffset)
}

// FromTime constructs an Epoch from a time.Time. The calendar arithmetic
// (leap years, month lengths) is the standard library's; only the final
// linear mapping to Julian Date happens here.
func FromTime(t time.Time) Epoch {
	return Epoch{jd: float64(t.UnixMilli())/millisPerDay + UnixEpochJD}
}

// Now returns the current instant.
func Now() Epoch {
	return FromTime(time.Now().UTC())
}

// gregorianLayouts are the accepted Gregorian timestamp formats. All parse
// in UTC when no zone is present.
var gregorianLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse interprets a Gregorian UTC timestamp string as an Epoch.
func Parse(s string) (Epoch, error) {
	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t.UTC()), nil
		}
	}
	return Epoch{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// JD returns the Julian Date.
func (e Epoch) JD() float64 { return e.jd }

// MJD returns the Modified Julian Date.
func (e Epoch) MJD() float64 { return e.jd - MJDOffset }

// J2000Days returns days elapsed since the J2000 epoch.
func (e Epoch) J2000Days() float64 { return e.jd - J2000JD }

// J2000Seconds returns seconds elapsed since the J2000 epoch.
func (e Epoch) J2000Seconds() float64 { return (e.jd - J2000JD) * SecondsPerDay }

// Unix returns Unix seconds.
func (e Epoch) Unix() float64 { return (e.jd - UnixEpochJD) * SecondsPerDay }

// GPS returns GPS seconds.
func (e Epoch) GPS() float64 { return e.Unix() - GPSUnixOffset }

// Time returns the Gregorian UTC calendar representation, rounded to the
// nearest millisecond.
func (e Epoch) Time() time.Time {
	ms := math.Round((e.jd - UnixEpochJD) * millisPerDay)
	return time.UnixMilli(int64(ms)).UTC()
}

// String formats the epoch as its Gregorian UTC timestamp.
func (e Epoch) String() string {
	return e.Time().Format("2006-01-02T15:04:05.000Z")
}

// FormatJD formats the Julian Date with the display precision used by the
// calculator (6 decimal places, under 0.1 s of resolution).
func (e Epoch) FormatJD() string { return strconv.FormatFloat(e.jd, 'f', 6, 64) }

// FormatMJD formats the Modified Julian Date to 6 decimal places.
func (e Epoch) FormatMJD() string { return strconv.FormatFloat(e.MJD(), 'f', 6, 64) }

// FormatJ2000Days formats days since J2000 to 6 decimal places.
func (e Epoch) FormatJ2000Days() string { return strconv.FormatFloat(e.J2000Days(), 'f', 6, 64) }

// FormatJ2000Seconds formats seconds since J2000 to 2 decimal places.
func (e Epoch) FormatJ2000Seconds() string { return strconv.FormatFloat(e.J2000Seconds(), 'f', 2, 64) }

// FormatUnix formats Unix time as whole seconds.
func (e Epoch) FormatUnix() string { return strconv.FormatFloat(math.Round(e.Unix()), 'f', 0, 64) }

// FormatGPS formats GPS time as whole seconds.
func (e Epoch) FormatGPS() string { return strconv.FormatFloat(math.Round(e.GPS()), 'f', 0, 64) }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
