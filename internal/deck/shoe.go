package deck

import rand "math/rand/v2"

// Shoe is the drawable sequence of cards: a single 52-card deck that
// replenishes itself with a freshly shuffled deck whenever a draw finds
// it empty. The RNG is injected so shuffles are reproducible in tests.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a shoe holding a freshly shuffled 52-card deck.
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	s.replenish()
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order and
// falls back to shuffled decks once they run out. For deterministic tests.
func NewStackedShoe(rng *rand.Rand, cards ...Card) *Shoe {
	// Draw pops from the tail, so store in reverse to deal in order.
	stacked := make([]Card, 0, len(cards))
	for i := len(cards) - 1; i >= 0; i-- {
		stacked = append(stacked, cards[i])
	}
	return &Shoe{cards: stacked, rng: rng}
}

// Draw removes and returns the top card. If the shoe is empty it first
// replenishes with a full shuffled deck; reshuffled reports whether that
// happened so callers can surface it.
func (s *Shoe) Draw() (card Card, reshuffled bool) {
	if len(s.cards) == 0 {
		s.replenish()
		reshuffled = true
	}
	card = s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, reshuffled
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

func (s *Shoe) replenish() {
	s.cards = s.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			s.cards = append(s.cards, NewCard(suit, rank))
		}
	}
	s.shuffle()
}

// shuffle performs a Fisher-Yates shuffle over the current contents
func (s *Shoe) shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}
