package minigame

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultFallingSpeed = 1200.0

	// justInTimeStart is how far above each target line the objects begin.
	justInTimeStart = 2000.0
	// justInTimeMissMargin is how far past the line an object may fall
	// before the attempt counts as missed.
	justInTimeMissMargin = 100.0
	justInTimeSettle     = time.Second

	// MissedDistance is recorded for a player who never pressed. It can
	// only tie with another miss.
	MissedDistance = math.MaxFloat64
)

type fallingObject struct {
	height   float64
	done     bool
	missed   bool
	distance float64
}

// JustInTimeJudge drops one object per player toward a target line. Each
// player presses once; the smaller distance from the line wins.
type JustInTimeJudge struct {
	labels  [2]string
	speed   float64
	objects [2]fallingObject

	settled  time.Duration
	outcome  Outcome
	resolved bool
}

func NewJustInTimeJudge(speed float64, labels [2]string) *JustInTimeJudge {
	if speed <= 0 {
		speed = DefaultFallingSpeed
	}
	j := &JustInTimeJudge{labels: labels, speed: speed}
	for i := range j.objects {
		j.objects[i] = fallingObject{height: justInTimeStart, distance: MissedDistance}
	}
	return j
}

func (j *JustInTimeJudge) Kind() Kind { return JustInTime }

// Distance returns p's recorded distance and whether p is finished.
func (j *JustInTimeJudge) Distance(p Player) (float64, bool) {
	return j.objects[p].distance, j.objects[p].done
}

func (j *JustInTimeJudge) finished() bool {
	return j.objects[P1].done && j.objects[P2].done
}

func (j *JustInTimeJudge) Tick(in Input, dt time.Duration) (Outcome, bool) {
	if j.resolved {
		return j.outcome, true
	}
	dt = clampElapsed(dt)

	if j.finished() {
		j.settled += dt
		if j.settled >= justInTimeSettle {
			j.outcome = compare(j.objects[P1].distance, j.objects[P2].distance)
			j.resolved = true
		}
		return j.outcome, j.resolved
	}

	fall := j.speed * dt.Seconds()
	for _, p := range Players {
		o := &j.objects[p]
		if o.done {
			continue
		}
		if in.Pressed(p) {
			o.done = true
			o.distance = math.Abs(o.height)
			continue
		}
		o.height -= fall
		if o.height <= -justInTimeMissMargin {
			o.done = true
			o.missed = true
			o.distance = MissedDistance
		}
	}
	return Outcome{}, false
}

func (j *JustInTimeJudge) Frame() Frame {
	var f Frame
	f.Message = "Just In Time!"
	settling := j.finished()
	for _, p := range Players {
		o := j.objects[p]
		switch {
		case o.missed:
			f.Instructions[p] = "Missed!"
		case o.done:
			f.Instructions[p] = fmt.Sprintf("Pressed! Diff: %.1f", o.distance)
		default:
			f.Instructions[p] = "Press " + j.labels[p] + " when the object is near your marker!"
			f.show(fallingEntity(p), o.height/justInTimeStart)
		}
		if !settling {
			f.show(markerEntity(p), 0)
		}
	}
	return f
}
