package ui

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-orbits/internal/orbit"
)

// StateModel renders the inertial state vector.
type StateModel struct {
	sv  orbit.StateVector
	el  orbit.Elements
	err error
}

// NewStateModel creates the state vector view. err carries a failed
// transform; the view shows it instead of a vector.
func NewStateModel(sv orbit.StateVector, el orbit.Elements, err error) StateModel {
	return StateModel{sv: sv, el: el, err: err}
}

// View renders the state vector table.
func (m StateModel) View() string {
	if m.err != nil {
		return "\n  " + errorStyle.Render("state vector unavailable: "+m.err.Error())
	}

	sv := m.sv
	lines := []string{
		"",
		row("Position X", fmt.Sprintf("%.3f km", sv.Position.X)),
		row("Position Y", fmt.Sprintf("%.3f km", sv.Position.Y)),
		row("Position Z", fmt.Sprintf("%.3f km", sv.Position.Z)),
		"",
		row("Velocity X", fmt.Sprintf("%.6f km/s", sv.Velocity.X)),
		row("Velocity Y", fmt.Sprintf("%.6f km/s", sv.Velocity.Y)),
		row("Velocity Z", fmt.Sprintf("%.6f km/s", sv.Velocity.Z)),
		"",
		row("Radius", fmt.Sprintf("%.3f km", sv.Position.Norm())),
		row("Speed", fmt.Sprintf("%.6f km/s", sv.Velocity.Norm())),
		row("Specific energy", fmt.Sprintf("%.4f km²/s²", sv.SpecificEnergy())),
	}

	return strings.Join(lines, "\n")
}
