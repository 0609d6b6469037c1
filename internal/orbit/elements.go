package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-orbits/internal/epoch"
	"github.com/litescript/ls-orbits/internal/tle"
)

// ErrInvalidOrbitalElements reports an element set outside the supported
// elliptical domain.
var ErrInvalidOrbitalElements = errors.New("invalid orbital elements")

// Elements is a classical orbital element set for an elliptical Earth
// orbit. Angles are in degrees.
type Elements struct {
	SemiMajorAxis float64 // km
	Eccentricity  float64 // 0 <= e < 1
	Inclination   float64
	RAAN          float64
	ArgPerigee    float64
	TrueAnomaly   float64
	Epoch         epoch.Epoch
}

// FromTLE assembles the full element set from a parsed TLE record: the
// semi-major axis from the mean motion via Kepler's third law, and the true
// anomaly from the mean anomaly via the Kepler solver.
func FromTLE(rec tle.Record) (Elements, error) {
	if rec.MeanMotion <= 0 {
		return Elements{}, fmt.Errorf("%w: mean motion %v rev/day", ErrInvalidOrbitalElements, rec.MeanMotion)
	}
	if rec.Eccentricity < 0 || rec.Eccentricity >= 1 {
		return Elements{}, fmt.Errorf("%w: eccentricity %v", ErrInvalidOrbitalElements, rec.Eccentricity)
	}

	// Mean motion rev/day -> rad/s, then a = (mu / n²)^(1/3).
	n := rec.MeanMotion * twoPi / epoch.SecondsPerDay
	a := math.Cbrt(EarthMu / (n * n))

	ta := TrueAnomaly(degToRad(rec.MeanAnomaly), rec.Eccentricity)

	return Elements{
		SemiMajorAxis: a,
		Eccentricity:  rec.Eccentricity,
		Inclination:   rec.Inclination,
		RAAN:          rec.RAAN,
		ArgPerigee:    rec.ArgPerigee,
		TrueAnomaly:   radToDeg(ta),
		Epoch:         rec.Epoch,
	}, nil
}

// ParseTLE parses two TLE lines and assembles the element set.
func ParseTLE(line1, line2 string) (Elements, error) {
	rec, err := tle.Parse(line1, line2)
	if err != nil {
		return Elements{}, err
	}
	return FromTLE(rec)
}

// Validate reports whether the element set is inside the supported domain.
func (el Elements) Validate() error {
	if el.SemiMajorAxis <= 0 || !isFinite(el.SemiMajorAxis) {
		return fmt.Errorf("%w: semi-major axis %v km", ErrInvalidOrbitalElements, el.SemiMajorAxis)
	}
	if el.Eccentricity < 0 || el.Eccentricity >= 1 || !isFinite(el.Eccentricity) {
		return fmt.Errorf("%w: eccentricity %v", ErrInvalidOrbitalElements, el.Eccentricity)
	}
	for _, angle := range []struct {
		name  string
		value float64
	}{
		{"inclination", el.Inclination},
		{"raan", el.RAAN},
		{"argument of perigee", el.ArgPerigee},
		{"true anomaly", el.TrueAnomaly},
	} {
		if !isFinite(angle.value) {
			return fmt.Errorf("%w: %s %v", ErrInvalidOrbitalElements, angle.name, angle.value)
		}
	}
	return nil
}

// MeanMotionRad returns the mean motion in radians per second.
func (el Elements) MeanMotionRad() float64 {
	a := el.SemiMajorAxis
	return math.Sqrt(EarthMu / (a * a * a))
}

// Period returns the orbital period in minutes.
func (el Elements) Period() float64 {
	return twoPi * math.Sqrt(math.Pow(el.SemiMajorAxis, 3)/EarthMu) / 60
}

// Apogee returns the apogee radius in km.
func (el Elements) Apogee() float64 {
	return el.SemiMajorAxis * (1 + el.Eccentricity)
}

// Perigee returns the perigee radius in km.
func (el Elements) Perigee() float64 {
	return el.SemiMajorAxis * (1 - el.Eccentricity)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
