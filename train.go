package gears

// Pointer is the input snapshot for one tick. Down is the current button
// state, the Train detects press and release edges itself.
type Pointer struct {
	Pos  Vector
	Down bool
}

// Train owns the gears and the constraints coupling them, and runs the
// per-tick pipeline: drag → solve → apply impulses → integrate angles.
// It is single threaded, one Step per tick.
type Train struct {
	Gears       []*Gear
	Constraints []Constraint

	tickRate float64

	drag    *DragState
	wasDown bool

	impulses []float64
}

// NewTrain creates an empty train stepped at the given tick rate (Hz).
// The tick rate scales the drag controller's velocity tracking gain.
func NewTrain(tickRate float64) *Train {
	assert(tickRate > 0, "Tick rate must be positive")
	return &Train{tickRate: tickRate}
}

func (train *Train) AddGear(gear *Gear) *Gear {
	train.Gears = append(train.Gears, gear)
	return gear
}

func (train *Train) AddConstraint(constraint Constraint) {
	train.Constraints = append(train.Constraints, constraint)
}

// Dragging returns the currently grabbed gear, or nil.
func (train *Train) Dragging() *Gear {
	if train.drag == nil {
		return nil
	}
	return train.drag.Gear
}

// Step advances the simulation by one tick. A grab only starts on the
// press edge, so holding the button over empty space and sweeping across a
// gear does not pick it up. The grabbed gear's velocity is set before the
// solve so the constraints propagate the drag to the coupled gears.
//
// Every constraint is solved against the velocities the gears had at the
// start of the tick, and the impulses are summed and applied once. With
// three or more constraints sharing a gear a small residual can remain; it
// self-corrects over the following ticks.
func (train *Train) Step(pointer Pointer) {
	if pointer.Down {
		if train.drag == nil && !train.wasDown {
			train.drag = BeginDrag(train.Gears, pointer.Pos)
		}
		if train.drag != nil {
			train.drag.Track(pointer.Pos, train.tickRate)
		}
	} else {
		train.drag = nil
	}
	train.wasDown = pointer.Down

	if len(train.impulses) != len(train.Gears) {
		train.impulses = make([]float64, len(train.Gears))
	}
	for i := range train.impulses {
		train.impulses[i] = 0
	}

	for _, c := range train.Constraints {
		ja, jb := c.Solve(train.Gears)
		train.impulses[c.A] += ja
		train.impulses[c.B] += jb
	}

	for i, gear := range train.Gears {
		gear.W += train.impulses[i]
		gear.Integrate()
	}
}
