package minigame

import (
	"math/rand/v2"
	"time"
)

var shootoutCountdown = [...]string{"Get Ready!", "3", "2", "1"}

const (
	shootoutMinPhase = 500 * time.Millisecond
	shootoutMaxPhase = 2 * time.Second

	// The four countdown phases are followed by one silent delay.
	shootoutPhases = len(shootoutCountdown) + 1
)

// ShootoutJudge disqualifies anyone who fires before "Shoot!" and awards the
// round to the first shot after it.
type ShootoutJudge struct {
	labels    [2]string
	durations [shootoutPhases]time.Duration
	phase     int
	elapsed   time.Duration

	outcome  Outcome
	resolved bool
}

// NewShootoutJudge draws every phase duration from [0.5s, 2s).
func NewShootoutJudge(rng *rand.Rand, labels [2]string) *ShootoutJudge {
	var d [shootoutPhases]time.Duration
	for i := range d {
		d[i] = uniformDuration(rng, shootoutMinPhase, shootoutMaxPhase)
	}
	return newShootoutJudge(d, labels)
}

func newShootoutJudge(durations [shootoutPhases]time.Duration, labels [2]string) *ShootoutJudge {
	return &ShootoutJudge{labels: labels, durations: durations}
}

func (j *ShootoutJudge) Kind() Kind { return Shootout }

// Shooting reports whether "Shoot!" is showing.
func (j *ShootoutJudge) Shooting() bool {
	return j.phase >= shootoutPhases
}

func (j *ShootoutJudge) Tick(in Input, dt time.Duration) (Outcome, bool) {
	if j.resolved {
		return j.outcome, true
	}

	p1, p2 := in.Pressed(P1), in.Pressed(P2)

	if j.Shooting() {
		switch {
		case p1 && p2:
			j.resolve(Outcome{Result: Tie})
		case p1:
			j.resolve(winFor(P1, CauseNone))
		case p2:
			j.resolve(winFor(P2, CauseNone))
		}
		return j.outcome, j.resolved
	}

	switch {
	case p1 && p2:
		j.resolve(Outcome{Result: BothFailed, Cause: CauseEarlyPress})
		return j.outcome, true
	case p1:
		j.resolve(winFor(P2, CauseEarlyPress))
		return j.outcome, true
	case p2:
		j.resolve(winFor(P1, CauseEarlyPress))
		return j.outcome, true
	}

	j.elapsed += clampElapsed(dt)
	for !j.Shooting() && j.elapsed >= j.durations[j.phase] {
		j.elapsed -= j.durations[j.phase]
		j.phase++
	}

	return Outcome{}, false
}

func (j *ShootoutJudge) resolve(o Outcome) {
	j.outcome = o
	j.resolved = true
}

func (j *ShootoutJudge) Frame() Frame {
	var f Frame
	for _, p := range Players {
		f.Instructions[p] = "Press " + j.labels[p] + " when you see 'Shoot!'"
	}
	switch {
	case j.Shooting():
		f.Message = "Shoot!"
	case j.phase < len(shootoutCountdown):
		f.Message = shootoutCountdown[j.phase]
	default:
		f.Message = shootoutCountdown[len(shootoutCountdown)-1]
	}
	return f
}
