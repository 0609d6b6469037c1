package ui

import (
	"strings"
	"time"

	"github.com/litescript/ls-orbits/internal/epoch"
)

// ClockModel renders the current instant and the loaded TLE epoch in all
// six time representations. It refreshes on the root model's tick.
type ClockModel struct {
	now      epoch.Epoch
	tleEpoch epoch.Epoch
}

// NewClockModel creates the clock view.
func NewClockModel(tleEpoch epoch.Epoch) ClockModel {
	return ClockModel{now: epoch.Now(), tleEpoch: tleEpoch}
}

// SetNow updates the displayed instant.
func (m ClockModel) SetNow(t time.Time) ClockModel {
	m.now = epoch.FromTime(t.UTC())
	return m
}

// View renders both epoch tables.
func (m ClockModel) View() string {
	lines := []string{""}
	lines = append(lines, "  "+titleStyle.Render("Now"))
	lines = append(lines, epochRows(m.now)...)
	lines = append(lines, "", "  "+titleStyle.Render("TLE Epoch"))
	lines = append(lines, epochRows(m.tleEpoch)...)
	return strings.Join(lines, "\n")
}

func epochRows(e epoch.Epoch) []string {
	return []string{
		row("Gregorian UTC", e.String()),
		row("Julian Date", e.FormatJD()),
		row("Modified Julian Date", e.FormatMJD()),
		row("J2000 (days)", e.FormatJ2000Days()),
		row("J2000 (seconds)", e.FormatJ2000Seconds()),
		row("Unix (seconds)", e.FormatUnix()),
		row("GPS (seconds)", e.FormatGPS()),
	}
}
