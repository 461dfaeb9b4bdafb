package minigame

import "math/rand/v2"

// Selector draws minigame kinds without replacement. Every kind is played
// once per cycle; the bag refills when it runs dry.
type Selector struct {
	bag []Kind
	rng *rand.Rand
}

// NewSelector returns a selector with a full bag.
func NewSelector(rng *rand.Rand) *Selector {
	s := &Selector{rng: rng}
	s.Reset()
	return s
}

// Reset refills the bag with every kind.
func (s *Selector) Reset() {
	if len(Kinds) == 0 {
		panic("minigame: empty kind set")
	}
	s.bag = append(s.bag[:0], Kinds...)
}

// Len reports how many kinds remain in the current cycle.
func (s *Selector) Len() int {
	return len(s.bag)
}

// Remaining returns a copy of the kinds not yet drawn this cycle.
func (s *Selector) Remaining() []Kind {
	out := make([]Kind, len(s.bag))
	copy(out, s.bag)
	return out
}

// Draw removes and returns a uniformly chosen kind from the bag.
func (s *Selector) Draw() Kind {
	if len(s.bag) == 0 {
		s.Reset()
	}
	i := s.rng.IntN(len(s.bag))
	k := s.bag[i]
	last := len(s.bag) - 1
	s.bag[i] = s.bag[last]
	s.bag = s.bag[:last]
	return k
}
