package minigame

import (
	"math"
	"testing"
	"time"
)

func TestJustInTimeJudge_PressBeatsMiss(t *testing.T) {
	j := NewJustInTimeJudge(1000, testLabels)

	// 1000 units/s for 1.995s leaves both objects 5 above the line.
	j.Tick(none, 1995*time.Millisecond)
	if _, done := j.Tick(press(P1), 10*time.Millisecond); done {
		t.Fatal("resolved while P2 still falling")
	}

	d, ok := j.Distance(P1)
	if !ok {
		t.Fatal("P1 should be done")
	}
	if math.Abs(d-5) > 1e-6 {
		t.Errorf("P1 distance %v, want 5", d)
	}

	j.Tick(none, 100*time.Millisecond)
	d, ok = j.Distance(P2)
	if !ok || d != MissedDistance {
		t.Fatalf("P2 distance %v ok=%v, want missed", d, ok)
	}

	got, done := j.Tick(none, time.Second)
	if !done {
		t.Fatal("should resolve after settling")
	}
	if want := winFor(P1, CauseNone); got != want {
		t.Errorf("outcome %+v, want %+v", got, want)
	}
}

func TestJustInTimeJudge_BothMissTie(t *testing.T) {
	j := NewJustInTimeJudge(DefaultFallingSpeed, testLabels)
	j.Tick(none, 3*time.Second)
	for _, p := range Players {
		if _, ok := j.Distance(p); !ok {
			t.Fatalf("%s should have missed", p)
		}
	}
	got, done := j.Tick(none, time.Second)
	if !done || got.Result != Tie {
		t.Errorf("outcome %+v done=%v, want tie", got, done)
	}
	if f := j.Frame(); f.Instructions[P1] != "Missed!" {
		t.Errorf("P1 instruction %q, want Missed!", f.Instructions[P1])
	}
}

func TestJustInTimeJudge_EqualDistanceTie(t *testing.T) {
	j := NewJustInTimeJudge(DefaultFallingSpeed, testLabels)
	j.Tick(none, time.Second)
	j.Tick(press(P1, P2), 10*time.Millisecond)
	got, done := j.Tick(none, time.Second)
	if !done || got.Result != Tie {
		t.Errorf("outcome %+v done=%v, want tie", got, done)
	}
}

func TestJustInTimeJudge_ClosestWins(t *testing.T) {
	j := NewJustInTimeJudge(1000, testLabels)
	j.Tick(none, time.Second)
	j.Tick(press(P2), 900*time.Millisecond) // P2 latched at 1000
	j.Tick(press(P1), 10*time.Millisecond)  // P1 latched at 100
	got, done := j.Tick(none, time.Second)
	if !done {
		t.Fatal("should resolve")
	}
	if want := winFor(P1, CauseNone); got != want {
		t.Errorf("outcome %+v, want %+v", got, want)
	}
}

func TestJustInTimeJudge_PressIsMeasuredWhereObjectWasShown(t *testing.T) {
	j := NewJustInTimeJudge(1000, testLabels)
	j.Tick(none, time.Second)
	j.Tick(press(P1), 500*time.Millisecond)
	if d, _ := j.Distance(P1); math.Abs(d-1000) > 1e-6 {
		t.Errorf("P1 distance %v, want 1000", d)
	}
}

func TestJustInTimeJudge_NegativeElapsed(t *testing.T) {
	j := NewJustInTimeJudge(DefaultFallingSpeed, testLabels)
	j.Tick(none, -time.Second)
	f := j.Frame()
	if f.Positions[EntityP1Falling] != 1 {
		t.Errorf("P1 object offset %v, want 1", f.Positions[EntityP1Falling])
	}
}

func TestJustInTimeJudge_Frame(t *testing.T) {
	j := NewJustInTimeJudge(1000, testLabels)
	f := j.Frame()
	for _, e := range []Entity{EntityP1Falling, EntityP2Falling, EntityP1Marker, EntityP2Marker} {
		if !f.Visible[e] {
			t.Errorf("%s should be visible", e)
		}
	}

	j.Tick(none, time.Second)
	j.Tick(press(P1), 10*time.Millisecond)
	f = j.Frame()
	if f.Visible[EntityP1Falling] {
		t.Error("P1 object should be hidden after pressing")
	}
	if f.Instructions[P1] != "Pressed! Diff: 1000.0" {
		t.Errorf("P1 instruction %q", f.Instructions[P1])
	}
	if !f.Visible[EntityP2Falling] {
		t.Error("P2 object should still be falling")
	}

	j.Tick(press(P2), 10*time.Millisecond)
	f = j.Frame()
	if f.Visible[EntityP1Marker] || f.Visible[EntityP2Marker] {
		t.Error("markers should hide while settling")
	}
}
