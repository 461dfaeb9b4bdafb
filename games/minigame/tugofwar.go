package minigame

import (
	"fmt"
	"time"
)

const (
	TugOfWarDuration = 30 * time.Second

	// tugOfWarSpan is the net press count that pins the marker to an edge.
	tugOfWarSpan = 50.0
)

// TugOfWarJudge counts press edges for a fixed time. Player 1 pulls the
// position up, Player 2 pulls it down; the sign at the end decides.
type TugOfWarJudge struct {
	labels   [2]string
	elapsed  time.Duration
	position int

	outcome  Outcome
	resolved bool
}

func NewTugOfWarJudge(labels [2]string) *TugOfWarJudge {
	return &TugOfWarJudge{labels: labels}
}

func (j *TugOfWarJudge) Kind() Kind { return TugOfWar }

// Position is the net press count, positive toward Player 1.
func (j *TugOfWarJudge) Position() int { return j.position }

func (j *TugOfWarJudge) Tick(in Input, dt time.Duration) (Outcome, bool) {
	if j.resolved {
		return j.outcome, true
	}

	j.position += in.Button(P1).Presses
	j.position -= in.Button(P2).Presses

	j.elapsed += clampElapsed(dt)
	if j.elapsed >= TugOfWarDuration {
		j.outcome = decideTugOfWar(j.position)
		j.resolved = true
	}
	return j.outcome, j.resolved
}

func decideTugOfWar(position int) Outcome {
	switch {
	case position > 0:
		return winFor(P1, CauseNone)
	case position < 0:
		return winFor(P2, CauseNone)
	}
	return Outcome{Result: Tie}
}

// tugOfWarOffset maps a net press count onto [-1, 1] for display.
func tugOfWarOffset(position int) float64 {
	return clamp(float64(position)/tugOfWarSpan, -1, 1)
}

func (j *TugOfWarJudge) Frame() Frame {
	var f Frame
	f.Message = "Tug of War!"
	for _, p := range Players {
		f.Instructions[p] = "Mash " + j.labels[p] + "!"
	}
	remaining := max(TugOfWarDuration-j.elapsed, 0)
	f.Timer = fmt.Sprintf("%.0fs", remaining.Seconds())
	f.show(EntityTimer, 0)
	f.show(EntityTugOfWar, tugOfWarOffset(j.position))
	return f
}
