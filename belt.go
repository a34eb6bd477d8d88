package gears

import "math"

// Arcs are flattened into this many straight segments for rendering.
const beltArcSegments = 40

// Circles closer than this to the containment limit get no belt.
const beltOverlapSlop = 1.0

type Segment struct {
	A, B Vector
}

// BeltPath is the outline of an uncrossed belt wrapped around two pulleys:
// the two external tangent segments plus the arc hugging the far side of
// each pulley.
type BeltPath struct {
	Top, Bottom Segment
	ArcA, ArcB  []Vector
}

// ComputeBelt builds the belt outline for pulleys at posA and posB with
// radii rA and rB. Returns nil when the circles overlap or one contains
// the other, since no external tangent exists there.
func ComputeBelt(posA Vector, rA float64, posB Vector, rB float64) *BeltPath {
	delta := posB.Sub(posA)
	d := delta.Length()
	if d < math.Abs(rA-rB)+beltOverlapSlop {
		return nil
	}

	alpha := delta.ToAngle()

	// Normal direction φ of an external tangent satisfies
	// cos(φ − α) = (rA − rB) / d. Clamp guards float overshoot at the
	// containment boundary.
	offset := math.Acos(Clamp((rA-rB)/d, -1, 1))

	phiTop := alpha + offset
	phiBot := alpha - offset

	return &BeltPath{
		Top:    Segment{tangentPoint(posA, rA, phiTop), tangentPoint(posB, rB, phiTop)},
		Bottom: Segment{tangentPoint(posA, rA, phiBot), tangentPoint(posB, rB, phiBot)},
		// Each arc wraps the side of its pulley facing away from the
		// other one, so the belt never crosses the gap between them.
		ArcA: arcThrough(posA, rA, phiBot, phiTop, alpha+math.Pi),
		ArcB: arcThrough(posB, rB, phiTop, phiBot, alpha),
	}
}

func tangentPoint(center Vector, r, phi float64) Vector {
	return center.Add(ForAngle(phi).Mult(r))
}

// arcThrough samples the arc from angleA to angleB that passes through the
// away angle, choosing the sweep direction accordingly.
func arcThrough(center Vector, r, angleA, angleB, away float64) []Vector {
	a := mod2pi(angleA)
	b := mod2pi(angleB)
	aw := mod2pi(away)

	span := mod2pi(b - a)
	if mod2pi(aw-a) >= span {
		// away lies outside the counter-clockwise sweep, go clockwise
		span -= 2 * math.Pi
	}

	points := make([]Vector, beltArcSegments+1)
	for k := 0; k <= beltArcSegments; k++ {
		t := a + span*float64(k)/beltArcSegments
		points[k] = center.Add(ForAngle(t).Mult(r))
	}
	return points
}

func mod2pi(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
