package minigame

// Result is the tag of a RoundOutcome.
type Result int

const (
	Player1Wins Result = iota
	Player2Wins
	Tie
	BothFailed
)

func (r Result) String() string {
	switch r {
	case Player1Wins:
		return "player1_wins"
	case Player2Wins:
		return "player2_wins"
	case Tie:
		return "tie"
	case BothFailed:
		return "both_failed"
	}
	return "unknown"
}

// Cause records why a round ended the way it did, for announcements.
type Cause int

const (
	// CauseNone is a normal comparison result.
	CauseNone Cause = iota
	// CauseEarlyPress is a Shootout disqualification.
	CauseEarlyPress
	// CauseFailed is a failed Simon Says step.
	CauseFailed
)

// Outcome is the result of one round.
type Outcome struct {
	Result Result
	Cause  Cause
}

func winFor(p Player, cause Cause) Outcome {
	if p == P1 {
		return Outcome{Result: Player1Wins, Cause: cause}
	}
	return Outcome{Result: Player2Wins, Cause: cause}
}

// Winner returns the winning player, if any.
func (o Outcome) Winner() (Player, bool) {
	switch o.Result {
	case Player1Wins:
		return P1, true
	case Player2Wins:
		return P2, true
	}
	return 0, false
}

// Announcement is the message shown when the round resolves.
func (o Outcome) Announcement() string {
	winner, ok := o.Winner()
	switch {
	case ok && o.Cause == CauseEarlyPress:
		return winner.Opponent().String() + " pressed early! Disqualified.\n" + winner.String() + " wins!"
	case ok && o.Cause == CauseFailed:
		return winner.Opponent().String() + " failed! " + winner.String() + " wins!"
	case ok:
		return winner.String() + " wins!"
	case o.Result == BothFailed && o.Cause == CauseEarlyPress:
		return "Both pressed early! Disqualified.\nNo points."
	case o.Result == BothFailed:
		return "Both failed! No points."
	}
	return "It's a tie!"
}

// compare resolves a lower-is-better contest.
func compare[T ~int64 | ~float64](p1, p2 T) Outcome {
	switch {
	case p1 < p2:
		return winFor(P1, CauseNone)
	case p2 < p1:
		return winFor(P2, CauseNone)
	}
	return Outcome{Result: Tie}
}
