// Package report renders calculation results as text tables and JSON for
// the headless CLI modes.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-orbits/internal/epoch"
	"github.com/litescript/ls-orbits/internal/orbit"
)

const rule = 58

// WriteEpochTable writes all six representations of an epoch.
func WriteEpochTable(w io.Writer, e epoch.Epoch) {
	fmt.Fprintln(w, "Epoch")
	fmt.Fprintln(w, strings.Repeat("─", rule))
	fmt.Fprintf(w, "%-22s %s\n", "Gregorian UTC", e.String())
	fmt.Fprintf(w, "%-22s %s\n", "Julian Date", e.FormatJD())
	fmt.Fprintf(w, "%-22s %s\n", "Modified Julian Date", e.FormatMJD())
	fmt.Fprintf(w, "%-22s %s\n", "J2000 (days)", e.FormatJ2000Days())
	fmt.Fprintf(w, "%-22s %s\n", "J2000 (seconds)", e.FormatJ2000Seconds())
	fmt.Fprintf(w, "%-22s %s\n", "Unix (seconds)", e.FormatUnix())
	fmt.Fprintf(w, "%-22s %s\n", "GPS (seconds)", e.FormatGPS())
}

// WriteElements writes the classical element set with derived quantities.
func WriteElements(w io.Writer, el orbit.Elements) {
	fmt.Fprintln(w, "Orbital Elements")
	fmt.Fprintln(w, strings.Repeat("─", rule))
	fmt.Fprintf(w, "%-22s %12.3f km\n", "Semi-major axis", el.SemiMajorAxis)
	fmt.Fprintf(w, "%-22s %12.7f\n", "Eccentricity", el.Eccentricity)
	fmt.Fprintf(w, "%-22s %12.4f deg\n", "Inclination", el.Inclination)
	fmt.Fprintf(w, "%-22s %12.4f deg\n", "RAAN", el.RAAN)
	fmt.Fprintf(w, "%-22s %12.4f deg\n", "Argument of perigee", el.ArgPerigee)
	fmt.Fprintf(w, "%-22s %12.4f deg\n", "True anomaly", el.TrueAnomaly)
	fmt.Fprintf(w, "%-22s %12.2f min\n", "Period", el.Period())
	fmt.Fprintf(w, "%-22s %12.3f km\n", "Apogee radius", el.Apogee())
	fmt.Fprintf(w, "%-22s %12.3f km\n", "Perigee radius", el.Perigee())
}

// WriteStateVector writes the inertial position and velocity.
func WriteStateVector(w io.Writer, sv orbit.StateVector) {
	fmt.Fprintln(w, "State Vector (ECI)")
	fmt.Fprintln(w, strings.Repeat("─", rule))
	fmt.Fprintf(w, "%-12s %14.3f %14.3f %14.3f km\n", "Position", sv.Position.X, sv.Position.Y, sv.Position.Z)
	fmt.Fprintf(w, "%-12s %14.6f %14.6f %14.6f km/s\n", "Velocity", sv.Velocity.X, sv.Velocity.Y, sv.Velocity.Z)
	fmt.Fprintf(w, "%-12s %14.3f km\n", "|r|", sv.Position.Norm())
	fmt.Fprintf(w, "%-12s %14.6f km/s\n", "|v|", sv.Velocity.Norm())
}
