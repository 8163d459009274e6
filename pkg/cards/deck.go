package cards

import (
	"math/rand"

	"github.com/google/uuid"
)

// Suit represents a card suit.
type Suit string

const (
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
	Spades   Suit = "S"
)

// Suits lists every suit in a stable order. Suit-count vectors are keyed by
// this order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank represents a card rank.
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists every rank in deal order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card is a playing card. Each card carries a unique ID so that client
// selections can reference cards without exposing position information.
// Cards are immutable once created.
type Card struct {
	ID   string `json:"id"`
	Rank Rank   `json:"rank"`
	Suit Suit   `json:"suit"`
}

// String returns a short human-readable representation, e.g. "KH".
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// Value returns the numeric value of a rank. Numeral ranks map to their
// numeral, J/Q/K map to 11/12/13. An ace counts 1 unless aceAsEleven is set.
func (r Rank) Value(aceAsEleven bool) int {
	switch r {
	case Ace:
		if aceAsEleven {
			return 11
		}
		return 1
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ten:
		return 10
	default:
		return int(r[0] - '0')
	}
}

// BossValue returns the value a card contributes to the boss total. The boss
// never takes the high-ace option.
func BossValue(r Rank) int {
	return r.Value(false)
}

// SuitCounts returns the number of cards per suit, keyed by Suits order.
func SuitCounts(cs []Card) map[Suit]int {
	counts := map[Suit]int{Hearts: 0, Diamonds: 0, Clubs: 0, Spades: 0}
	for _, c := range cs {
		counts[c.Suit]++
	}
	return counts
}

// Deck is an ordered sequence of cards consumed strictly from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a full 52-card deck with fresh card IDs and shuffles it
// using the supplied random source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, len(Suits)*len(Ranks)),
		rng:   rng,
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{
				ID:   uuid.New().String(),
				Rank: rank,
				Suit: suit,
			})
		}
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the order of the remaining cards.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. The second return is false when the
// deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DrawN draws up to n cards, stopping early if the deck runs out.
func (d *Deck) DrawN(n int) []Card {
	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Draw()
		if !ok {
			break
		}
		drawn = append(drawn, card)
	}
	return drawn
}

// Size returns the number of cards remaining.
func (d *Deck) Size() int {
	return len(d.cards)
}
