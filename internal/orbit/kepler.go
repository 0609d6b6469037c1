// Package orbit derives classical orbital elements and Cartesian state
// vectors for elliptical Earth orbits.
package orbit

import "math"

const (
	// EarthMu is the standard gravitational parameter for Earth in km³/s².
	EarthMu = 398600.4418

	// DefaultTolerance is the Kepler solver convergence threshold in radians.
	DefaultTolerance = 1e-6

	// maxIterations caps the Newton-Raphson loop. The solver returns its
	// best estimate when the cap is hit rather than failing; for the
	// eccentricities this tool handles (e < 0.9) convergence is well
	// inside the cap.
	maxIterations = 10

	twoPi = 2 * math.Pi
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E using Newton-Raphson iteration seeded at E = M. Inputs are in
// radians. The second return value reports whether the iteration converged
// to within the tolerance; if tolerance <= 0, DefaultTolerance is used.
func SolveKepler(meanAnomaly, eccentricity, tolerance float64) (float64, bool) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	e := meanAnomaly
	for i := 0; i < maxIterations; i++ {
		delta := (e - eccentricity*math.Sin(e) - meanAnomaly) / (1 - eccentricity*math.Cos(e))
		e -= delta
		if math.Abs(delta) < tolerance {
			return e, true
		}
	}
	return e, false
}

// TrueAnomaly converts a mean anomaly (radians) to the true anomaly
// (radians, normalized to [0, 2π)) for the given eccentricity, using the
// default solver tolerance.
func TrueAnomaly(meanAnomaly, eccentricity float64) float64 {
	return TrueAnomalyWithTolerance(meanAnomaly, eccentricity, 0)
}

// TrueAnomalyWithTolerance is TrueAnomaly with an explicit solver tolerance
// in radians; tolerance <= 0 selects DefaultTolerance.
func TrueAnomalyWithTolerance(meanAnomaly, eccentricity, tolerance float64) float64 {
	eccAnom, _ := SolveKepler(meanAnomaly, eccentricity, tolerance)

	cosE := math.Cos(eccAnom)
	sinE := math.Sin(eccAnom)
	denom := 1 - eccentricity*cosE

	cosTA := (cosE - eccentricity) / denom
	sinTA := math.Sqrt(1-eccentricity*eccentricity) * sinE / denom

	return normalizeAngle(math.Atan2(sinTA, cosTA))
}

// normalizeAngle wraps an angle in radians into [0, 2π).
func normalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
