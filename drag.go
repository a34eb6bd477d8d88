package gears

import "math"

// Fraction of the remaining angular error closed per tick, times tick rate.
const dragGain = 4.0

// DragState tracks one grabbed gear while the pointer button is held.
type DragState struct {
	Gear *Gear

	// startAngle is the pointer's angle relative to the gear's rotation
	// at the moment of the grab, so later pointer motion maps to a
	// stable rotation target instead of snapping.
	startAngle float64
}

// BeginDrag grabs the topmost gear under point, scanning in reverse draw
// order so overlapping gears pick the one drawn last. Returns nil when the
// press misses every gear.
func BeginDrag(gears []*Gear, point Vector) *DragState {
	for i := len(gears) - 1; i >= 0; i-- {
		gear := gears[i]
		if gear.ContainsPoint(point) {
			pointerAngle := point.Sub(gear.Position).ToAngle()
			return &DragState{Gear: gear, startAngle: pointerAngle - gear.Angle}
		}
	}
	return nil
}

// Track sets the grabbed gear's angular velocity toward the pointer's
// rotation target. The error is wrapped into (−π, π] so the gear always
// turns the short way, and the gain is scaled by the tick rate.
func (drag *DragState) Track(point Vector, tickRate float64) {
	pointerAngle := point.Sub(drag.Gear.Position).ToAngle()
	target := pointerAngle - drag.startAngle

	delta := math.Mod(target-drag.Gear.Angle+math.Pi, 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}
	delta -= math.Pi

	drag.Gear.W = dragGain * delta / tickRate
}
