package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewActor(t *testing.T) {
	a := NewActor(StartX, StartY)

	if a.Position != (mgl64.Vec2{200, -100}) {
		t.Errorf("NewActor().Position = %v, want (200, -100)", a.Position)
	}
	if a.OnGround {
		t.Error("NewActor() should start airborne")
	}
	if !a.Inside {
		t.Error("NewActor() should start inside the current chunk")
	}
	if a.Velocity != (mgl64.Vec2{}) || a.Remainder != (mgl64.Vec2{}) {
		t.Error("NewActor() should start at rest")
	}
}

func TestActorMove(t *testing.T) {
	a := NewActor(0, 0)
	a.Move(3, -2)
	a.Move(-1, 0)

	if a.Position != (mgl64.Vec2{2, -2}) {
		t.Errorf("Position after moves = %v, want (2, -2)", a.Position)
	}
}

func TestActorFootprint(t *testing.T) {
	a := NewActor(16, -24)
	fp := a.Footprint()

	if fp.Min != (mgl64.Vec2{16, -32}) || fp.Max != (mgl64.Vec2{24, -24}) {
		t.Errorf("Footprint() = %v, want min (16,-32) max (24,-24)", fp)
	}
}
