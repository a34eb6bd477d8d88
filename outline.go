package gears

import "math"

// ToothProfile controls the tooth shape of a gear outline.
type ToothProfile struct {
	// Depth is the radial height of each tooth above the pitch circle.
	// Zero means a tenth of the pitch radius.
	Depth float64
	// TipFraction is the fraction of one tooth period occupied by the
	// flat tooth tip, in [0, 1].
	TipFraction float64
	// GapFraction is the fraction of one tooth period occupied by the
	// flat root between teeth, in [0, 1]. TipFraction + GapFraction
	// should not exceed 1, the remainder forms the two angled flanks.
	GapFraction float64
}

// GearOutline builds the closed tooth polygon for a gear: toothCount
// trapezoid teeth alternating between the root and tip circles, 4 vertices
// per tooth, wound in angular order.
func GearOutline(position Vector, pitchRadius float64, toothCount int, rotation float64, profile ToothProfile) []Vector {
	assert(toothCount >= 1, "Gear outline needs at least one tooth")

	depth := profile.Depth
	if depth == 0 {
		depth = pitchRadius * 0.1
	}
	outer := pitchRadius + depth
	inner := math.Max(pitchRadius-depth, 0)

	step := 2 * math.Pi / float64(toothCount)
	halfTip := step * profile.TipFraction / 2
	halfGap := step * profile.GapFraction / 2

	points := make([]Vector, 0, 4*toothCount)
	for i := 0; i < toothCount; i++ {
		mid := rotation + float64(i)*step
		points = append(points,
			// trailing edge of the root floor, where the flank rises
			position.Add(ForAngle(mid-step/2+halfGap).Mult(inner)),
			// leading and trailing edges of the tooth tip
			position.Add(ForAngle(mid-halfTip).Mult(outer)),
			position.Add(ForAngle(mid+halfTip).Mult(outer)),
			// leading edge of the next root floor
			position.Add(ForAngle(mid+step/2-halfGap).Mult(inner)),
		)
	}
	return points
}
