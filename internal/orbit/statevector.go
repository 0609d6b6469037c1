package orbit

import (
	"math"

	"github.com/litescript/ls-orbits/internal/epoch"
)

// StateVector is a Cartesian position/velocity pair in the Earth-centered
// inertial frame, tied to the epoch of the element set it came from.
type StateVector struct {
	Position Vec3 // km
	Velocity Vec3 // km/s
	Epoch    epoch.Epoch
}

// StateVector computes the inertial position and velocity for the element
// set: the state is formed in the perifocal frame and rotated through the
// 3-1-3 Euler sequence (RAAN about Z, inclination about X, argument of
// perigee about Z). The element set is validated first, so the transform
// never emits NaN.
func (el Elements) StateVector() (StateVector, error) {
	if err := el.Validate(); err != nil {
		return StateVector{}, err
	}

	a := el.SemiMajorAxis
	e := el.Eccentricity
	ta := degToRad(el.TrueAnomaly)

	// Perifocal position and velocity. The semi-latus rectum p fixes the
	// conic; r follows from the orbit equation.
	p := a * (1 - e*e)
	r := p / (1 + e*math.Cos(ta))

	xPF := r * math.Cos(ta)
	yPF := r * math.Sin(ta)

	vScale := math.Sqrt(EarthMu / p)
	vxPF := -vScale * math.Sin(ta)
	vyPF := vScale * (e + math.Cos(ta))

	cosO := math.Cos(degToRad(el.RAAN))
	sinO := math.Sin(degToRad(el.RAAN))
	cosI := math.Cos(degToRad(el.Inclination))
	sinI := math.Sin(degToRad(el.Inclination))
	cosW := math.Cos(degToRad(el.ArgPerigee))
	sinW := math.Sin(degToRad(el.ArgPerigee))

	// Direction cosines mapping perifocal (x toward perigee) to inertial.
	r11 := cosO*cosW - sinO*sinW*cosI
	r12 := -cosO*sinW - sinO*cosW*cosI
	r21 := sinO*cosW + cosO*sinW*cosI
	r22 := -sinO*sinW + cosO*cosW*cosI
	r31 := sinW * sinI
	r32 := cosW * sinI

	return StateVector{
		Position: Vec3{
			X: r11*xPF + r12*yPF,
			Y: r21*xPF + r22*yPF,
			Z: r31*xPF + r32*yPF,
		},
		Velocity: Vec3{
			X: r11*vxPF + r12*vyPF,
			Y: r21*vxPF + r22*vyPF,
			Z: r31*vxPF + r32*vyPF,
		},
		Epoch: el.Epoch,
	}, nil
}

// SpecificEnergy returns the specific orbital energy v²/2 - mu/r in km²/s².
// For a bound orbit this equals -mu/(2a).
func (sv StateVector) SpecificEnergy() float64 {
	v := sv.Velocity.Norm()
	r := sv.Position.Norm()
	return v*v/2 - EarthMu/r
}
