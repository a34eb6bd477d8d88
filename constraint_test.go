package gears

import (
	"math"
	"testing"
)

func TestConstraintSatisfaction(t *testing.T) {
	cases := []struct {
		rA, rB float64
		wA, wB float64
		belt   bool
	}{
		{40, 80, 0.1, 0, false},
		{40, 80, -0.3, 0.2, false},
		{80, 50, 0.1, 0, true},
		{50, 50, 1.5, -1.5, true},
		{10, 200, 0.01, 5, false},
	}

	for _, c := range cases {
		gears := []*Gear{
			NewGear(Vector{0, 0}, c.rA, 8),
			NewGear(Vector{500, 0}, c.rB, 8),
		}
		gears[0].W = c.wA
		gears[1].W = c.wB

		var constraint Constraint
		if c.belt {
			constraint = NewBelt(gears, 0, 1)
		} else {
			constraint = NewMesh(gears, 0, 1)
		}

		jA, jB := constraint.Solve(gears)
		gears[0].W += jA
		gears[1].W += jB

		err := constraint.Ja*gears[0].W + constraint.Jb*gears[1].W
		if math.Abs(err) > 1e-9 {
			t.Errorf("constraint velocity %v not zeroed for radii %v,%v", err, c.rA, c.rB)
		}
	}
}

func TestMeshJacobian(t *testing.T) {
	gears := []*Gear{
		NewGear(Vector{0, 0}, 40, 8),
		NewGear(Vector{120, 0}, 80, 16),
	}
	c := NewMesh(gears, 0, 1)
	if c.Ja != 40 || c.Jb != 80 {
		t.Errorf("expected jacobian (40, 80), got (%v, %v)", c.Ja, c.Jb)
	}
}

func TestBeltJacobian(t *testing.T) {
	gears := []*Gear{
		NewGear(Vector{0, 0}, 80, 16),
		NewGear(Vector{330, 0}, 50, 10),
	}
	c := NewBelt(gears, 0, 1)
	if c.Ja != 80 || c.Jb != -50 {
		t.Errorf("expected jacobian (80, -50), got (%v, %v)", c.Ja, c.Jb)
	}
}

// Driving the small gear of a meshed pair at a constant 0.1 rad/tick
// should settle the big one at half that speed in the opposite direction.
func TestMeshedPairSpeedRatio(t *testing.T) {
	gears := []*Gear{
		NewGear(Vector{200, 300}, 40, 8),
		NewGear(Vector{320, 300}, 80, 16),
	}
	c := NewMesh(gears, 0, 1)

	for i := 0; i < 200; i++ {
		gears[0].W = 0.1
		jA, jB := c.Solve(gears)
		gears[0].W += jA
		gears[1].W += jB
	}

	if math.Abs(gears[1].W - -0.05) > 1e-9 {
		t.Errorf("expected driven gear at -0.05, got %v", gears[1].W)
	}
}

// A belted pair turns in the same direction, speeds in inverse radius ratio.
func TestBeltedPairSpeedRatio(t *testing.T) {
	gears := []*Gear{
		NewGear(Vector{320, 300}, 80, 16),
		NewGear(Vector{650, 300}, 50, 10),
	}
	c := NewBelt(gears, 0, 1)

	for i := 0; i < 200; i++ {
		gears[0].W = 0.1
		jA, jB := c.Solve(gears)
		gears[0].W += jA
		gears[1].W += jB
	}

	if math.Abs(gears[1].W-0.16) > 1e-9 {
		t.Errorf("expected driven gear at 0.16, got %v", gears[1].W)
	}
}

func TestSolveDoesNotMutate(t *testing.T) {
	gears := []*Gear{
		NewGear(Vector{0, 0}, 40, 8),
		NewGear(Vector{120, 0}, 80, 16),
	}
	gears[0].W = 0.1
	c := NewMesh(gears, 0, 1)
	c.Solve(gears)

	if gears[0].W != 0.1 || gears[1].W != 0 {
		t.Errorf("Solve mutated gear velocities: %v, %v", gears[0].W, gears[1].W)
	}
}
