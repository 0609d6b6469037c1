package epoch

import "fmt"

// Format identifies one of the numeric time representations accepted by
// Convert. Gregorian input goes through Parse instead, since it is a
// calendar string rather than a number.
type Format string

const (
	FormatJD           Format = "jd"
	FormatMJD          Format = "mjd"
	FormatJ2000Days    Format = "j2000"
	FormatJ2000Seconds Format = "j2000s"
	FormatUnix         Format = "unix"
	FormatGPS          Format = "gps"
)

// Formats lists the accepted numeric input formats.
func Formats() []Format {
	return []Format{FormatJD, FormatMJD, FormatJ2000Days, FormatJ2000Seconds, FormatUnix, FormatGPS}
}

// Convert interprets value in the given representation and returns the Epoch.
func Convert(value float64, from Format) (Epoch, error) {
	switch from {
	case FormatJD:
		return FromJD(value)
	case FormatMJD:
		return FromMJD(value)
	case FormatJ2000Days:
		return FromJ2000Days(value)
	case FormatJ2000Seconds:
		return FromJ2000Seconds(value)
	case FormatUnix:
		return FromUnix(value)
	case FormatGPS:
		return FromGPS(value)
	default:
		return Epoch{}, fmt.Errorf("unknown time format %q", from)
	}
}
