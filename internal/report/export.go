package report

import (
	"encoding/json"
	"io"

	"github.com/litescript/ls-orbits/internal/epoch"
	"github.com/litescript/ls-orbits/internal/orbit"
)

// Snapshot is the JSON-serializable result of one TLE calculation.
type Snapshot struct {
	Epoch    EpochExport        `json:"epoch"`
	Elements ElementsExport     `json:"elements"`
	State    *StateVectorExport `json:"state_vector,omitempty"`
}

// EpochExport carries all six time representations of an epoch.
type EpochExport struct {
	Gregorian    string  `json:"gregorian_utc"`
	JD           float64 `json:"julian_date"`
	MJD          float64 `json:"modified_julian_date"`
	J2000Days    float64 `json:"j2000_days"`
	J2000Seconds float64 `json:"j2000_seconds"`
	Unix         float64 `json:"unix_seconds"`
	GPS          float64 `json:"gps_seconds"`
}

// ElementsExport is a JSON-friendly element set with derived quantities.
type ElementsExport struct {
	SemiMajorAxis float64 `json:"semi_major_axis_km"`
	Eccentricity  float64 `json:"eccentricity"`
	Inclination   float64 `json:"inclination_deg"`
	RAAN          float64 `json:"raan_deg"`
	ArgPerigee    float64 `json:"arg_perigee_deg"`
	TrueAnomaly   float64 `json:"true_anomaly_deg"`
	Period        float64 `json:"period_min"`
	Apogee        float64 `json:"apogee_km"`
	Perigee       float64 `json:"perigee_km"`
}

// StateVectorExport is a JSON-friendly inertial state.
type StateVectorExport struct {
	Position [3]float64 `json:"position_km"`
	Velocity [3]float64 `json:"velocity_km_s"`
}

// ExportEpoch converts an epoch to its export form.
func ExportEpoch(e epoch.Epoch) EpochExport {
	return EpochExport{
		Gregorian:    e.String(),
		JD:           e.JD(),
		MJD:          e.MJD(),
		J2000Days:    e.J2000Days(),
		J2000Seconds: e.J2000Seconds(),
		Unix:         e.Unix(),
		GPS:          e.GPS(),
	}
}

// ExportSnapshot assembles the export form of a calculation. sv may be nil
// when only the element set was requested.
func ExportSnapshot(el orbit.Elements, sv *orbit.StateVector) *Snapshot {
	snap := &Snapshot{
		Epoch: ExportEpoch(el.Epoch),
		Elements: ElementsExport{
			SemiMajorAxis: el.SemiMajorAxis,
			Eccentricity:  el.Eccentricity,
			Inclination:   el.Inclination,
			RAAN:          el.RAAN,
			ArgPerigee:    el.ArgPerigee,
			TrueAnomaly:   el.TrueAnomaly,
			Period:        el.Period(),
			Apogee:        el.Apogee(),
			Perigee:       el.Perigee(),
		},
	}
	if sv != nil {
		snap.State = &StateVectorExport{
			Position: [3]float64{sv.Position.X, sv.Position.Y, sv.Position.Z},
			Velocity: [3]float64{sv.Velocity.X, sv.Velocity.Y, sv.Velocity.Z},
		}
	}
	return snap
}

// WriteJSON writes the snapshot as indented JSON.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
