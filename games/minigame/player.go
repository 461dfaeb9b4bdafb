/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package minigame

import "fmt"

// Player identifies one side of the duel.
type Player int

const (
	P1 Player = iota
	P2
)

// Players lists both sides in display order.
var Players = [2]Player{P1, P2}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == P1 {
		return P2
	}
	return P1
}

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p)+1)
}

// Kind is one of the five minigames.
type Kind int

const (
	Shootout Kind = iota
	Count
	TugOfWar
	JustInTime
	SimonSays
)

// Kinds is the closed set drawn by the Selector.
var Kinds = []Kind{Shootout, Count, TugOfWar, JustInTime, SimonSays}

func (k Kind) String() string {
	switch k {
	case Shootout:
		return "Shootout"
	case Count:
		return "Count"
	case TugOfWar:
		return "Tug of War"
	case JustInTime:
		return "Just In Time"
	case SimonSays:
		return "Simon Says"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Score holds points per player, indexed by Player.
type Score [2]int

// Get returns the points for p.
func (s Score) Get(p Player) int {
	return s[p]
}
