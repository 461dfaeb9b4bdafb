package minigame

import "time"

// Button is the state of one logical button for a single tick.
type Button struct {
	// Presses counts press edges queued since the previous tick.
	Presses int
	// Held reports whether the button was down when the tick was sampled.
	Held bool
}

// Pressed reports whether at least one press edge arrived this tick.
func (b Button) Pressed() bool {
	return b.Presses > 0
}

// Down reports whether the button was observed down at any point this tick.
// A press edge that was released again before sampling still counts.
func (b Button) Down() bool {
	return b.Held || b.Presses > 0
}

// Input is everything the core reads from the outside world on one tick.
type Input struct {
	Buttons [2]Button
	Restart bool
}

// Button returns the button state for p.
func (in Input) Button(p Player) Button {
	return in.Buttons[p]
}

// Pressed reports whether p produced a press edge this tick.
func (in Input) Pressed(p Player) bool {
	return in.Buttons[p].Pressed()
}

func clampElapsed(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	return dt
}
