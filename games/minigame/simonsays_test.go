package minigame

import (
	"testing"
	"time"
)

func scriptedSimon(maxSteps int, steps ...SimonStep) *SimonSaysJudge {
	i := 0
	return newSimonSaysJudge(func() SimonStep {
		s := steps[i%len(steps)]
		i++
		return s
	}, maxSteps)
}

// openWindow runs the intro and the lead-in of the first instruction.
func openWindow(t *testing.T, j *SimonSaysJudge) {
	t.Helper()
	if _, done := j.Tick(none, 4*simonIntroPhase); done {
		t.Fatal("resolved during intro")
	}
	if _, done := j.Tick(none, simonLead); done {
		t.Fatal("resolved during lead")
	}
	if !j.Listening() {
		t.Fatal("window should be open")
	}
}

// closeWindow feeds the given inputs 100ms apart and then lets the window run out.
func closeWindow(j *SimonSaysJudge, inputs ...Input) (Outcome, bool) {
	for _, in := range inputs {
		if o, done := j.Tick(in, 100*time.Millisecond); done {
			return o, done
		}
	}
	rest := simonGrace - time.Duration(len(inputs))*100*time.Millisecond
	return j.Tick(none, rest)
}

func TestSimonStep_Failed(t *testing.T) {
	tests := []struct {
		step SimonStep
		taps int
		held bool
		want bool
	}{
		{SimonStep{TapTwice, true}, 2, true, false},
		{SimonStep{TapTwice, true}, 1, true, true},
		{SimonStep{TapTwice, true}, 3, true, true},
		{SimonStep{TapOnce, false}, 0, false, false},
		{SimonStep{TapOnce, false}, 1, true, true},
		{SimonStep{TapThrice, true}, 3, true, false},
		{SimonStep{Hold, true}, 0, true, false},
		{SimonStep{Hold, true}, 0, false, true},
		{SimonStep{Hold, false}, 0, false, false},
		{SimonStep{Hold, false}, 1, true, true},
	}
	for _, tt := range tests {
		if got := tt.step.Failed(tt.taps, tt.held); got != tt.want {
			t.Errorf("%s taps=%d held=%v: Failed %v, want %v", tt.step, tt.taps, tt.held, got, tt.want)
		}
	}
}

func TestSimonSaysJudge_WrongTapCountLoses(t *testing.T) {
	j := scriptedSimon(0, SimonStep{TapTwice, true})
	openWindow(t, j)

	got, done := closeWindow(j, taps(1, 1), taps(1, 0))
	if !done {
		t.Fatal("should resolve when P2 fails")
	}
	if want := winFor(P1, CauseFailed); got != want {
		t.Errorf("outcome %+v, want %+v", got, want)
	}
}

func TestSimonSaysJudge_BothComplyContinues(t *testing.T) {
	j := scriptedSimon(0, SimonStep{TapTwice, true}, SimonStep{Hold, false})
	openWindow(t, j)

	if _, done := closeWindow(j, taps(2, 1), taps(0, 1)); done {
		t.Fatal("both complied, round should continue")
	}
	if j.Steps() != 1 {
		t.Errorf("Steps %d, want 1", j.Steps())
	}
	if got := j.Frame().Message; got != "Both succeeded!" {
		t.Errorf("message %q, want Both succeeded!", got)
	}

	j.Tick(none, simonFeedback)
	step, ok := j.Current()
	if !ok || step != (SimonStep{Hold, false}) {
		t.Errorf("current %v ok=%v, want Hold", step, ok)
	}
	if got := j.Frame().Message; got != "Hold" {
		t.Errorf("message %q, want Hold", got)
	}
}

func TestSimonSaysJudge_UnprefixedTapFails(t *testing.T) {
	j := scriptedSimon(0, SimonStep{TapOnce, false})
	openWindow(t, j)
	got, done := closeWindow(j, press(P1))
	if !done {
		t.Fatal("should resolve")
	}
	if want := winFor(P2, CauseFailed); got != want {
		t.Errorf("outcome %+v, want %+v", got, want)
	}
}

func TestSimonSaysJudge_Hold(t *testing.T) {
	j := scriptedSimon(0, SimonStep{Hold, true})
	openWindow(t, j)
	got, done := closeWindow(j, hold(P1), hold(P1))
	if !done {
		t.Fatal("should resolve")
	}
	if want := winFor(P1, CauseFailed); got != want {
		t.Errorf("outcome %+v, want %+v", got, want)
	}
}

func TestSimonSaysJudge_BothFail(t *testing.T) {
	j := scriptedSimon(0, SimonStep{TapThrice, true})
	openWindow(t, j)
	got, done := closeWindow(j, taps(1, 2))
	if !done {
		t.Fatal("should resolve")
	}
	if got.Result != BothFailed {
		t.Errorf("result %s, want %s", got.Result, BothFailed)
	}
	if got.Announcement() != "Both failed! No points." {
		t.Errorf("announcement %q", got.Announcement())
	}
}

func TestSimonSaysJudge_LeadInputIgnored(t *testing.T) {
	j := scriptedSimon(0, SimonStep{TapOnce, false})
	j.Tick(none, 4*simonIntroPhase)
	j.Tick(taps(3, 3), simonLead)
	if _, done := closeWindow(j); done {
		t.Fatal("presses during the lead-in should not count")
	}
}

func TestSimonSaysJudge_MaxSteps(t *testing.T) {
	j := scriptedSimon(2, SimonStep{Hold, false})
	openWindow(t, j)
	if _, done := closeWindow(j); done {
		t.Fatal("first step should pass")
	}
	j.Tick(none, simonFeedback)
	j.Tick(none, simonLead)
	got, done := closeWindow(j)
	if !done || got.Result != Tie {
		t.Errorf("outcome %+v done=%v, want tie at step bound", got, done)
	}
}

func TestSimonSaysJudge_IntroFrame(t *testing.T) {
	j := scriptedSimon(0, SimonStep{TapOnce, true})
	f := j.Frame()
	if f.Message != "Get Ready for Simon Says!" {
		t.Errorf("message %q", f.Message)
	}
	if f.Instructions[P1] != "Follow the sequence!" {
		t.Errorf("P1 instruction %q", f.Instructions[P1])
	}
	j.Tick(none, 3*simonIntroPhase)
	if got := j.Frame().Message; got != "1" {
		t.Errorf("message %q, want 1", got)
	}
	j.Tick(none, simonIntroPhase)
	if got := j.Frame().Message; got != "Simon Says Tap Once" {
		t.Errorf("message %q, want Simon Says Tap Once", got)
	}
}

func TestNewSimonSaysJudge_PrefixChance(t *testing.T) {
	j := NewSimonSaysJudge(testRNG(5), 0)
	const draws = 20000
	prefixed := 0
	actions := make(map[SimonAction]int)
	for range draws {
		s := j.draw()
		if s.SimonSays {
			prefixed++
		}
		actions[s.Action]++
	}
	ratio := float64(prefixed) / draws
	if ratio < 0.72 || ratio > 0.78 {
		t.Errorf("prefix ratio %.3f, want about 0.75", ratio)
	}
	if len(actions) != len(simonActions) {
		t.Errorf("%d distinct actions, want %d", len(actions), len(simonActions))
	}
}
