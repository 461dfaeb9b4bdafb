/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package minigame

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Phase is where the session is in its round loop.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseResolved
	PhaseCountdown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseResolved:
		return "resolved"
	case PhaseCountdown:
		return "countdown"
	}
	return "unknown"
}

// Report describes a resolved round.
type Report struct {
	Round   int
	Kind    Kind
	Outcome Outcome
	Score   Score
}

// State is everything that outlives a single round.
type State struct {
	Score    Score
	Selector *Selector
}

// Session is the round loop: draw a kind, run its judge, score the outcome,
// count down, repeat. It is advanced only by Tick and is not safe for
// concurrent use.
type Session struct {
	opts   Options
	rng    *rand.Rand
	sink   Sink
	state  State
	judges func(Kind, *rand.Rand, Options) Judge

	phase     Phase
	round     int
	kind      Kind
	judge     Judge
	elapsed   time.Duration
	remaining int

	shown Frame
}

// NewSession creates a session in the idle phase. The first Tick starts
// round one.
func NewSession(rng *rand.Rand, sink Sink, opts Options) *Session {
	s := &Session{
		opts:   opts,
		rng:    rng,
		sink:   sink,
		state:  State{Selector: NewSelector(rng)},
		judges: NewJudge,
	}
	s.Restart()
	return s
}

// Restart throws away the score, the bag and any round in progress.
func (s *Session) Restart() {
	s.state.Score = Score{}
	s.state.Selector.Reset()
	s.phase = PhaseIdle
	s.round = 0
	s.judge = nil
	s.elapsed = 0
	s.remaining = 0

	s.shown = Frame{}
	s.emit(s.sink, s.shown)
	s.emitScores(s.sink)
}

// Tick advances the session by dt. A restart request is honoured before
// anything else and consumes the tick.
func (s *Session) Tick(in Input, dt time.Duration) {
	if in.Restart {
		s.Restart()
		return
	}
	dt = clampElapsed(dt)

	switch s.phase {
	case PhaseIdle:
		s.beginRound()
	case PhaseRunning:
		if outcome, done := s.judge.Tick(in, dt); done {
			s.resolve(outcome)
			return
		}
		s.render(s.judge.Frame())
	case PhaseResolved:
		s.elapsed += dt
		if s.elapsed >= s.opts.ResultHold {
			s.startCountdown()
		}
	case PhaseCountdown:
		s.elapsed += dt
		for s.remaining > 0 && s.elapsed >= time.Second {
			s.elapsed -= time.Second
			s.remaining--
		}
		if s.remaining == 0 {
			s.beginRound()
			return
		}
		s.render(s.countdownFrame())
	}
}

func (s *Session) beginRound() {
	s.round++
	s.kind = s.state.Selector.Draw()
	s.judge = s.judges(s.kind, s.rng, s.opts)
	s.phase = PhaseRunning
	s.elapsed = 0

	s.render(s.judge.Frame())
}

func (s *Session) resolve(o Outcome) {
	winner, ok := o.Winner()
	if ok {
		s.state.Score[winner]++
	}

	s.judge = nil
	s.phase = PhaseResolved
	s.elapsed = 0

	s.render(Frame{Message: o.Announcement()})
	s.emitScores(s.sink)
	if ok {
		s.sink.PlayWinAnimation(winner)
	}

	if s.opts.OnResolved != nil {
		s.opts.OnResolved(Report{
			Round:   s.round,
			Kind:    s.kind,
			Outcome: o,
			Score:   s.state.Score,
		})
	}
}

func (s *Session) startCountdown() {
	s.phase = PhaseCountdown
	s.elapsed = 0
	s.remaining = max(s.opts.Countdown, 0)
	if s.remaining == 0 {
		s.beginRound()
		return
	}
	s.render(s.countdownFrame())
}

func (s *Session) countdownFrame() Frame {
	return Frame{Message: fmt.Sprintf("Next Round in %ds", s.remaining)}
}

// render sends only what changed since the last frame.
func (s *Session) render(f Frame) {
	for _, p := range Players {
		if f.Instructions[p] != s.shown.Instructions[p] {
			s.sink.SetInstructionText(p, f.Instructions[p])
		}
	}
	if f.Message != s.shown.Message {
		s.sink.SetMessageText(f.Message)
	}
	if f.Timer != s.shown.Timer {
		s.sink.SetTimerText(f.Timer)
	}
	for _, e := range Entities {
		appearing := f.Visible[e] && !s.shown.Visible[e]
		if f.Visible[e] && (appearing || f.Positions[e] != s.shown.Positions[e]) {
			s.sink.SetVisualPosition(e, f.Positions[e])
		}
		if f.Visible[e] != s.shown.Visible[e] {
			s.sink.ShowEntity(e, f.Visible[e])
		}
	}
	s.shown = f
}

// emit writes all of f to sink regardless of what was shown before.
func (s *Session) emit(sink Sink, f Frame) {
	for _, p := range Players {
		sink.SetInstructionText(p, f.Instructions[p])
	}
	sink.SetMessageText(f.Message)
	sink.SetTimerText(f.Timer)
	for _, e := range Entities {
		if f.Visible[e] {
			sink.SetVisualPosition(e, f.Positions[e])
		}
		sink.ShowEntity(e, f.Visible[e])
	}
}

func (s *Session) emitScores(sink Sink) {
	for _, p := range Players {
		sink.SetScore(p, s.state.Score[p])
	}
}

// Replay writes the complete current display to sink, for a viewer that
// joins mid-session.
func (s *Session) Replay(sink Sink) {
	s.emitScores(sink)
	s.emit(sink, s.shown)
}

// Score returns the current points.
func (s *Session) Score() Score { return s.state.Score }

// Phase returns the loop phase.
func (s *Session) Phase() Phase { return s.phase }

// Round is the number of rounds started since the last restart.
func (s *Session) Round() int { return s.round }

// Kind returns the minigame being played, if a round is running.
func (s *Session) Kind() (Kind, bool) {
	return s.kind, s.phase == PhaseRunning
}

// BagLen reports how many kinds are left in the current cycle.
func (s *Session) BagLen() int { return s.state.Selector.Len() }

// Display returns the frame last sent to the sink.
func (s *Session) Display() Frame { return s.shown }
