package minigame

import "fmt"

// Entity is a visual object the core can show, hide and position.
type Entity int

const (
	EntityTimer Entity = iota
	EntityTugOfWar
	EntityP1Falling
	EntityP2Falling
	EntityP1Marker
	EntityP2Marker

	entityCount
)

// Entities lists every entity in a stable order.
var Entities = [entityCount]Entity{
	EntityTimer,
	EntityTugOfWar,
	EntityP1Falling,
	EntityP2Falling,
	EntityP1Marker,
	EntityP2Marker,
}

func (e Entity) String() string {
	switch e {
	case EntityTimer:
		return "timer"
	case EntityTugOfWar:
		return "tug_of_war"
	case EntityP1Falling:
		return "p1_falling"
	case EntityP2Falling:
		return "p2_falling"
	case EntityP1Marker:
		return "p1_marker"
	case EntityP2Marker:
		return "p2_marker"
	}
	return fmt.Sprintf("entity_%d", int(e))
}

func fallingEntity(p Player) Entity {
	if p == P1 {
		return EntityP1Falling
	}
	return EntityP2Falling
}

func markerEntity(p Player) Entity {
	if p == P1 {
		return EntityP1Marker
	}
	return EntityP2Marker
}

// Frame is the complete display a judge wants on screen right now.
// Judges only describe frames; the Session turns differences between
// consecutive frames into Sink calls.
type Frame struct {
	Message      string
	Instructions [2]string
	Timer        string
	Visible      [entityCount]bool
	Positions    [entityCount]float64
}

func (f *Frame) show(e Entity, offset float64) {
	f.Visible[e] = true
	f.Positions[e] = offset
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
