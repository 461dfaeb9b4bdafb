package minigame

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	countMinTarget = 10
	countMaxTarget = 21 // exclusive
	countReveal    = 2 * time.Second
)

// CountJudge asks both players to press once as close as they can to a target number
// of seconds. Closest reaction time wins.
type CountJudge struct {
	labels  [2]string
	target  time.Duration
	elapsed time.Duration

	pressed  [2]bool
	reaction [2]time.Duration

	revealed time.Duration
	outcome  Outcome
	resolved bool
}

// NewCountJudge draws an integer target from [10, 21) seconds.
func NewCountJudge(rng *rand.Rand, labels [2]string) *CountJudge {
	secs := countMinTarget + rng.IntN(countMaxTarget-countMinTarget)
	return newCountJudge(time.Duration(secs)*time.Second, labels)
}

func newCountJudge(target time.Duration, labels [2]string) *CountJudge {
	return &CountJudge{labels: labels, target: target}
}

func (j *CountJudge) Kind() Kind { return Count }

// Target returns the time both players aim for.
func (j *CountJudge) Target() time.Duration { return j.target }

// Reaction returns p's latched time and whether p has pressed.
func (j *CountJudge) Reaction(p Player) (time.Duration, bool) {
	return j.reaction[p], j.pressed[p]
}

func (j *CountJudge) bothPressed() bool {
	return j.pressed[P1] && j.pressed[P2]
}

func (j *CountJudge) Tick(in Input, dt time.Duration) (Outcome, bool) {
	if j.resolved {
		return j.outcome, true
	}
	dt = clampElapsed(dt)

	if j.bothPressed() {
		j.revealed += dt
		if j.revealed >= countReveal {
			j.outcome = decideCount(j.target, j.reaction[P1], j.reaction[P2])
			j.resolved = true
		}
		return j.outcome, j.resolved
	}

	j.elapsed += dt
	for _, p := range Players {
		if !j.pressed[p] && in.Pressed(p) {
			j.pressed[p] = true
			j.reaction[p] = j.elapsed
		}
	}
	return Outcome{}, false
}

// decideCount picks whoever landed closer to target.
func decideCount(target, p1, p2 time.Duration) Outcome {
	return compare((p1 - target).Abs(), (p2 - target).Abs())
}

func (j *CountJudge) Frame() Frame {
	var f Frame
	if j.bothPressed() {
		f.Message = fmt.Sprintf("Target: %ds\nPlayer 1: %.2fs\nPlayer 2: %.2fs",
			int(j.target/time.Second), j.reaction[P1].Seconds(), j.reaction[P2].Seconds())
		return f
	}
	f.Message = fmt.Sprintf("Press your button at exactly %d seconds!", int(j.target/time.Second))
	for _, p := range Players {
		if j.pressed[p] {
			f.Instructions[p] = "You have pressed!"
		} else {
			f.Instructions[p] = "Press " + j.labels[p]
		}
	}
	return f
}
