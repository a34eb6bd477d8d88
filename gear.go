package gears

import "math"

// ReferenceRadius is the radius at which a gear has unit inverse inertia.
// Inertia scales with the square of the radius (uniform density), so a gear
// twice this size takes four times the impulse to change speed.
const ReferenceRadius = 40.0

type Gear struct {
	Position   Vector
	Radius     float64
	ToothCount int

	// Angle is kept wrapped into [0, 2π) by Integrate.
	Angle float64
	// W is the angular velocity in radians per tick.
	W float64

	iInv float64
}

func NewGear(position Vector, radius float64, toothCount int) *Gear {
	assert(radius > 0, "Gear radius must be positive")
	assert(toothCount >= 1, "Gear must have at least one tooth")
	ratio := ReferenceRadius / radius
	return &Gear{
		Position:   position,
		Radius:     radius,
		ToothCount: toothCount,
		iInv:       ratio * ratio,
	}
}

func (gear *Gear) InverseInertia() float64 {
	return gear.iInv
}

// ContainsPoint reports whether point lies within the gear's circular hit region.
func (gear *Gear) ContainsPoint(point Vector) bool {
	return gear.Position.Distance(point) <= gear.Radius
}

// Integrate advances the angle by the current angular velocity, wrapping
// the result into [0, 2π).
func (gear *Gear) Integrate() {
	gear.Angle = math.Mod(gear.Angle+gear.W, 2*math.Pi)
	if gear.Angle < 0 {
		gear.Angle += 2 * math.Pi
	}
}

// Outline returns the gear's tooth polygon at its current position and rotation.
func (gear *Gear) Outline(profile ToothProfile) []Vector {
	return GearOutline(gear.Position, gear.Radius, gear.ToothCount, gear.Angle, profile)
}
