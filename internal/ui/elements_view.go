package ui

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-orbits/internal/orbit"
)

// ElementsModel renders the classical element set with derived quantities.
type ElementsModel struct {
	el orbit.Elements
}

// NewElementsModel creates the elements view.
func NewElementsModel(el orbit.Elements) ElementsModel {
	return ElementsModel{el: el}
}

// View renders the element table.
func (m ElementsModel) View() string {
	el := m.el

	lines := []string{
		"",
		row("Semi-major axis", fmt.Sprintf("%.3f km", el.SemiMajorAxis)),
		row("Eccentricity", fmt.Sprintf("%.7f", el.Eccentricity)),
		row("Inclination", fmt.Sprintf("%.4f°", el.Inclination)),
		row("RAAN", fmt.Sprintf("%.4f°", el.RAAN)),
		row("Argument of perigee", fmt.Sprintf("%.4f°", el.ArgPerigee)),
		row("True anomaly", fmt.Sprintf("%.4f°", el.TrueAnomaly)),
		"",
		row("Period", fmt.Sprintf("%.2f min", el.Period())),
		row("Apogee radius", fmt.Sprintf("%.3f km", el.Apogee())),
		row("Perigee radius", fmt.Sprintf("%.3f km", el.Perigee())),
		"",
		row("Epoch", el.Epoch.String()),
	}

	return strings.Join(lines, "\n")
}
