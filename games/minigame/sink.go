package minigame

// Sink receives presentation events in order. The core never reads back.
type Sink interface {
	SetInstructionText(p Player, text string)
	SetMessageText(text string)
	SetTimerText(text string)
	SetScore(p Player, value int)
	SetVisualPosition(e Entity, offset float64)
	ShowEntity(e Entity, visible bool)
	PlayWinAnimation(p Player)
}

// Event type names.
const (
	EventInstruction  = "instruction"
	EventMessage      = "message"
	EventTimer        = "timer"
	EventScore        = "score"
	EventPosition     = "position"
	EventShow         = "show"
	EventWinAnimation = "win_animation"
)

// Event is one recorded Sink call.
type Event struct {
	Type    string  `json:"type"`
	Player  int     `json:"player,omitempty"` // 1 or 2
	Text    string  `json:"text,omitempty"`
	Value   int     `json:"value,omitempty"`
	Entity  string  `json:"entity,omitempty"`
	Offset  float64 `json:"offset,omitempty"`
	Visible bool    `json:"visible,omitempty"`
}

// Recorder is a Sink that keeps every call as an Event.
type Recorder struct {
	Events []Event
}

// Flush returns the recorded events and starts over.
func (r *Recorder) Flush() []Event {
	out := r.Events
	r.Events = nil
	return out
}

func (r *Recorder) SetInstructionText(p Player, text string) {
	r.Events = append(r.Events, Event{Type: EventInstruction, Player: int(p) + 1, Text: text})
}

func (r *Recorder) SetMessageText(text string) {
	r.Events = append(r.Events, Event{Type: EventMessage, Text: text})
}

func (r *Recorder) SetTimerText(text string) {
	r.Events = append(r.Events, Event{Type: EventTimer, Text: text})
}

func (r *Recorder) SetScore(p Player, value int) {
	r.Events = append(r.Events, Event{Type: EventScore, Player: int(p) + 1, Value: value})
}

func (r *Recorder) SetVisualPosition(e Entity, offset float64) {
	r.Events = append(r.Events, Event{Type: EventPosition, Entity: e.String(), Offset: offset})
}

func (r *Recorder) ShowEntity(e Entity, visible bool) {
	r.Events = append(r.Events, Event{Type: EventShow, Entity: e.String(), Visible: visible})
}

func (r *Recorder) PlayWinAnimation(p Player) {
	r.Events = append(r.Events, Event{Type: EventWinAnimation, Player: int(p) + 1})
}
