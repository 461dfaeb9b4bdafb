package minigame

import (
	"math/rand/v2"
	"time"
)

// Judge runs one round of a single minigame as an explicit state machine.
//
// Tick advances the round by dt with the input that arrived during that
// interval and reports the outcome once the round has resolved. Input is
// judged against the state that was on display for the interval, before the
// clock moves. Frame describes what should be shown after the tick.
//
// Judges never touch the Sink and never change the Score.
type Judge interface {
	Kind() Kind
	Tick(in Input, dt time.Duration) (Outcome, bool)
	Frame() Frame
}

// Options tunes the judges and the session.
type Options struct {
	// Labels names each player's button in rule texts.
	Labels [2]string
	// FallingSpeed is the Just In Time descent speed, in units per second.
	FallingSpeed float64
	// SimonMaxSteps bounds Simon Says; zero disables the bound.
	SimonMaxSteps int
	// ResultHold is how long a resolved round stays on screen.
	ResultHold time.Duration
	// Countdown is the number of whole seconds between rounds.
	Countdown int
	// OnResolved, if set, is called once per resolved round.
	OnResolved func(Report)
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Labels:        [2]string{"LShift", "RShift"},
		FallingSpeed:  DefaultFallingSpeed,
		SimonMaxSteps: DefaultSimonMaxSteps,
		ResultHold:    2 * time.Second,
		Countdown:     5,
	}
}

// NewJudge builds a fresh judge for k. All round state lives in the judge
// and is discarded with it.
func NewJudge(k Kind, rng *rand.Rand, opts Options) Judge {
	switch k {
	case Shootout:
		return NewShootoutJudge(rng, opts.Labels)
	case Count:
		return NewCountJudge(rng, opts.Labels)
	case TugOfWar:
		return NewTugOfWarJudge(opts.Labels)
	case JustInTime:
		return NewJustInTimeJudge(opts.FallingSpeed, opts.Labels)
	case SimonSays:
		return NewSimonSaysJudge(rng, opts.SimonMaxSteps)
	}
	panic("minigame: unknown kind " + k.String())
}

// uniformDuration draws from [lo, hi).
func uniformDuration(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	return lo + time.Duration(rng.Int64N(int64(hi-lo)))
}
