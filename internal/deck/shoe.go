package deck

import (
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// Shoe is the card supply for a game. Cards are dealt from the live pile and
// come back through the discard pile; when the live pile runs out the
// discards are shuffled back in.
type Shoe struct {
	live    []Card
	discard []Card
	rng     *rand.Rand
}

// NewShoe creates a shoe holding all 52 cards in suit-major order.
// The shoe is not shuffled; callers must Shuffle before dealing.
func NewShoe(rng *rand.Rand) *Shoe {
	shoe := &Shoe{
		live:    make([]Card, 0, DeckSize),
		discard: make([]Card, 0, DeckSize),
		rng:     rng,
	}

	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			shoe.live = append(shoe.live, NewCard(suit, rank))
		}
	}

	return shoe
}

// Shuffle randomizes the order of the live pile (Fisher-Yates)
func (s *Shoe) Shuffle() {
	for i := len(s.live) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.live[i], s.live[j] = s.live[j], s.live[i]
	}
}

// DealOne removes and returns the last card of the live pile. The discard
// pile is moved back and shuffled whenever the live pile runs out, before
// or after the deal. Dealing when both piles are empty panics: it means
// more than 52 cards are being held.
func (s *Shoe) DealOne() Card {
	if len(s.live) == 0 {
		s.refill()
	}
	if len(s.live) == 0 {
		panic("deck: deal from empty shoe")
	}

	last := len(s.live) - 1
	card := s.live[last]
	s.live = s.live[:last]

	if len(s.live) == 0 {
		s.refill()
	}

	return card
}

// refill moves the discard pile into the live pile and shuffles it
func (s *Shoe) refill() {
	s.live = append(s.live, s.discard...)
	s.discard = s.discard[:0]
	s.Shuffle()
}

// Discard returns dealt cards to the discard pile
func (s *Shoe) Discard(cards ...Card) {
	s.discard = append(s.discard, cards...)
}

// Live returns the number of cards available to deal
func (s *Shoe) Live() int {
	return len(s.live)
}

// Discarded returns the number of cards waiting in the discard pile
func (s *Shoe) Discarded() int {
	return len(s.discard)
}

// Len returns the number of cards in the shoe, live and discarded
func (s *Shoe) Len() int {
	return len(s.live) + len(s.discard)
}

// Stack places cards on top of the live pile so the first argument is
// dealt first. It is used to set up known deals in tests and replays; the
// cards are taken out of the live and discard piles so the shoe still
// holds each card once.
func (s *Shoe) Stack(cards ...Card) {
	for _, c := range cards {
		s.live = remove(s.live, c)
		s.discard = remove(s.discard, c)
	}
	for i := len(cards) - 1; i >= 0; i-- {
		s.live = append(s.live, cards[i])
	}
}

func remove(pile []Card, c Card) []Card {
	for i, p := range pile {
		if p == c {
			return append(pile[:i], pile[i+1:]...)
		}
	}
	return pile
}
