package gears

// Constraint couples the angular velocities of two gears so that
// Ja·ωa + Jb·ωb = 0 at all times. The gears are referenced by index into
// the train's gear slice.
type Constraint struct {
	A, B   int
	Ja, Jb float64
}

// NewMesh couples two gears whose teeth mesh directly. Surface speeds at
// the contact point must match, which forces opposite rotation:
// ωa·ra = −ωb·rb.
func NewMesh(gears []*Gear, a, b int) Constraint {
	assert(a >= 0 && a < len(gears), "Constraint references a missing gear")
	assert(b >= 0 && b < len(gears), "Constraint references a missing gear")
	return Constraint{A: a, B: b, Ja: gears[a].Radius, Jb: gears[b].Radius}
}

// NewBelt couples two gears joined by an uncrossed belt. Both turn in the
// same direction: ωa·ra = ωb·rb.
func NewBelt(gears []*Gear, a, b int) Constraint {
	assert(a >= 0 && a < len(gears), "Constraint references a missing gear")
	assert(b >= 0 && b < len(gears), "Constraint references a missing gear")
	return Constraint{A: a, B: b, Ja: gears[a].Radius, Jb: -gears[b].Radius}
}

// Solve returns the pair of angular velocity impulses that drives the
// constraint velocity J·v to zero in one step:
//
//	λ = −(J·v) / (J·Minv·Jᵀ)
//
// The 2×2 products are inlined. The denominator is the effective mass sum;
// it is nonzero for any gears with positive radius. Solve does not mutate
// the gears, the caller applies the impulses.
func (c Constraint) Solve(gears []*Gear) (float64, float64) {
	a := gears[c.A]
	b := gears[c.B]

	iSum := c.Ja*c.Ja*a.iInv + c.Jb*c.Jb*b.iInv
	lambda := -(c.Ja*a.W + c.Jb*b.W) / iSum

	return a.iInv * c.Ja * lambda, b.iInv * c.Jb * lambda
}
