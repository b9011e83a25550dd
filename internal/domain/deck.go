package domain

import "math/rand"

// Deck is the 32-card stock for one round. It is created fresh each round and
// drained by the deal and the skat draw.
type Deck struct {
	cards []Card
}

// NewDeck returns an ordered 32-card deck.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the stock with a uniform Fisher-Yates shuffle.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. Drawing from an empty deck is a code
// defect, not a game situation.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		panic("draw from empty deck")
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// Len returns the number of cards left in the stock.
func (d *Deck) Len() int {
	return len(d.cards)
}
