package minigame

import "testing"

func TestOutcome_Winner(t *testing.T) {
	if p, ok := winFor(P1, CauseNone).Winner(); !ok || p != P1 {
		t.Errorf("winner %s ok=%v, want Player 1", p, ok)
	}
	if p, ok := winFor(P2, CauseFailed).Winner(); !ok || p != P2 {
		t.Errorf("winner %s ok=%v, want Player 2", p, ok)
	}
	if _, ok := (Outcome{Result: Tie}).Winner(); ok {
		t.Error("tie should have no winner")
	}
	if _, ok := (Outcome{Result: BothFailed}).Winner(); ok {
		t.Error("both failed should have no winner")
	}
}

func TestOutcome_Announcement(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{winFor(P1, CauseNone), "Player 1 wins!"},
		{winFor(P1, CauseEarlyPress), "Player 2 pressed early! Disqualified.\nPlayer 1 wins!"},
		{winFor(P2, CauseFailed), "Player 1 failed! Player 2 wins!"},
		{Outcome{Result: Tie}, "It's a tie!"},
		{Outcome{Result: BothFailed, Cause: CauseFailed}, "Both failed! No points."},
		{Outcome{Result: BothFailed, Cause: CauseEarlyPress}, "Both pressed early! Disqualified.\nNo points."},
	}
	for _, tt := range tests {
		if got := tt.outcome.Announcement(); got != tt.want {
			t.Errorf("%+v: announcement %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestPlayer_Opponent(t *testing.T) {
	if P1.Opponent() != P2 || P2.Opponent() != P1 {
		t.Error("opponents should swap")
	}
}
