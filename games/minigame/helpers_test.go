package minigame

import (
	"math/rand/v2"
	"time"
)

var testLabels = DefaultOptions().Labels

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func press(players ...Player) Input {
	var in Input
	for _, p := range players {
		in.Buttons[p].Presses++
	}
	return in
}

func taps(p1, p2 int) Input {
	var in Input
	in.Buttons[P1].Presses = p1
	in.Buttons[P2].Presses = p2
	return in
}

func hold(players ...Player) Input {
	var in Input
	for _, p := range players {
		in.Buttons[p].Held = true
	}
	return in
}

var none Input

// tickN feeds n empty ticks of dt each to j.
func tickN(j Judge, n int, dt time.Duration) (Outcome, bool) {
	var (
		o    Outcome
		done bool
	)
	for range n {
		o, done = j.Tick(none, dt)
		if done {
			return o, true
		}
	}
	return o, done
}
