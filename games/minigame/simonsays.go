package minigame

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultSimonMaxSteps = 30

	simonIntroPhase = 700 * time.Millisecond
	simonLead       = 500 * time.Millisecond
	simonGrace      = 1500 * time.Millisecond
	simonFeedback   = time.Second

	// simonSaysChance is the probability an instruction is prefixed.
	simonSaysChance = 0.75
)

var simonIntro = [...]string{"Get Ready for Simon Says!", "3", "2", "1"}

// SimonAction is what an instruction asks for.
type SimonAction int

const (
	TapOnce SimonAction = iota
	TapTwice
	TapThrice
	Hold
)

var simonActions = [...]SimonAction{TapOnce, TapTwice, TapThrice, Hold}

func (a SimonAction) String() string {
	switch a {
	case TapOnce:
		return "Tap Once"
	case TapTwice:
		return "Tap Twice"
	case TapThrice:
		return "Tap Thrice"
	case Hold:
		return "Hold"
	}
	return "Unknown"
}

// Taps is the press count a prefixed tap instruction requires.
func (a SimonAction) Taps() int {
	switch a {
	case TapOnce:
		return 1
	case TapTwice:
		return 2
	case TapThrice:
		return 3
	}
	return 0
}

// SimonStep is one instruction. Without the "Simon Says" prefix the player
// must do nothing at all.
type SimonStep struct {
	Action    SimonAction
	SimonSays bool
}

func (s SimonStep) String() string {
	if s.SimonSays {
		return "Simon Says " + s.Action.String()
	}
	return s.Action.String()
}

// Failed reports whether a player who tapped taps times, and was or was not
// seen holding the button, broke the instruction.
func (s SimonStep) Failed(taps int, held bool) bool {
	if s.Action == Hold {
		return held != s.SimonSays
	}
	if s.SimonSays {
		return taps != s.Action.Taps()
	}
	return taps > 0
}

type simonStage int

const (
	simonStageIntro simonStage = iota
	simonStageLead
	simonStageWindow
	simonStageFeedback
)

// SimonSaysJudge repeats instructions until somebody slips. Both players
// are checked against the same instruction and window.
type SimonSaysJudge struct {
	draw     func() SimonStep
	maxSteps int

	stage   simonStage
	intro   int
	elapsed time.Duration
	steps   int
	current SimonStep
	taps    [2]int
	held    [2]bool

	outcome  Outcome
	resolved bool
}

// NewSimonSaysJudge returns a judge drawing instructions from rng. A
// positive maxSteps ends the round in a tie after that many passed steps.
func NewSimonSaysJudge(rng *rand.Rand, maxSteps int) *SimonSaysJudge {
	return newSimonSaysJudge(func() SimonStep {
		return SimonStep{
			Action:    simonActions[rng.IntN(len(simonActions))],
			SimonSays: rng.Float64() < simonSaysChance,
		}
	}, maxSteps)
}

func newSimonSaysJudge(draw func() SimonStep, maxSteps int) *SimonSaysJudge {
	return &SimonSaysJudge{draw: draw, maxSteps: max(maxSteps, 0)}
}

func (j *SimonSaysJudge) Kind() Kind { return SimonSays }

// Steps is the number of instructions both players have passed.
func (j *SimonSaysJudge) Steps() int { return j.steps }

// Current returns the instruction on screen, if one is showing.
func (j *SimonSaysJudge) Current() (SimonStep, bool) {
	return j.current, j.stage != simonStageIntro
}

// Listening reports whether input is being evaluated.
func (j *SimonSaysJudge) Listening() bool {
	return j.stage == simonStageWindow
}

func (j *SimonSaysJudge) Tick(in Input, dt time.Duration) (Outcome, bool) {
	if j.resolved {
		return j.outcome, true
	}

	if j.stage == simonStageWindow {
		for _, p := range Players {
			b := in.Button(p)
			j.taps[p] += b.Presses
			if b.Down() {
				j.held[p] = true
			}
		}
	}

	j.elapsed += clampElapsed(dt)

	switch j.stage {
	case simonStageIntro:
		for j.intro < len(simonIntro) && j.elapsed >= simonIntroPhase {
			j.elapsed -= simonIntroPhase
			j.intro++
		}
		if j.intro == len(simonIntro) {
			j.nextStep()
		}
	case simonStageLead:
		if j.elapsed >= simonLead {
			j.elapsed -= simonLead
			j.stage = simonStageWindow
		}
	case simonStageWindow:
		if j.elapsed >= simonGrace {
			j.elapsed -= simonGrace
			j.evaluate()
		}
	case simonStageFeedback:
		if j.elapsed >= simonFeedback {
			j.elapsed -= simonFeedback
			j.nextStep()
		}
	}

	return j.outcome, j.resolved
}

func (j *SimonSaysJudge) nextStep() {
	j.current = j.draw()
	j.taps = [2]int{}
	j.held = [2]bool{}
	j.stage = simonStageLead
}

func (j *SimonSaysJudge) evaluate() {
	p1 := j.current.Failed(j.taps[P1], j.held[P1])
	p2 := j.current.Failed(j.taps[P2], j.held[P2])

	switch {
	case p1 && p2:
		j.resolve(Outcome{Result: BothFailed, Cause: CauseFailed})
	case p1:
		j.resolve(winFor(P2, CauseFailed))
	case p2:
		j.resolve(winFor(P1, CauseFailed))
	default:
		j.steps++
		if j.maxSteps > 0 && j.steps >= j.maxSteps {
			j.resolve(Outcome{Result: Tie})
			return
		}
		j.stage = simonStageFeedback
	}
}

func (j *SimonSaysJudge) resolve(o Outcome) {
	j.outcome = o
	j.resolved = true
}

func (j *SimonSaysJudge) Frame() Frame {
	var f Frame
	if j.stage == simonStageIntro {
		f.Message = simonIntro[min(j.intro, len(simonIntro)-1)]
		f.Instructions = [2]string{"Follow the sequence!", "Follow the sequence!"}
		return f
	}
	text := j.current.String()
	f.Instructions = [2]string{text, text}
	f.Message = text
	if j.stage == simonStageFeedback {
		f.Message = "Both succeeded!"
	}
	return f
}
