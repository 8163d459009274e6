package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullring/bossfight/pkg/cards"
)

func card(id string, rank cards.Rank, suit cards.Suit) cards.Card {
	return cards.Card{ID: id, Rank: rank, Suit: suit}
}

// Boss: K♥ 6♦ 2♣ = 21 with aces low.
func bossTwentyOne() []cards.Card {
	return []cards.Card{
		card("b1", cards.King, cards.Hearts),
		card("b2", cards.Six, cards.Diamonds),
		card("b3", cards.Two, cards.Clubs),
	}
}

func TestEvaluateBossTotalAceLow(t *testing.T) {
	boss := []cards.Card{
		card("b1", cards.Ace, cards.Hearts),
		card("b2", cards.King, cards.Spades),
	}
	result := Evaluate(boss, nil)
	assert.Equal(t, 14, result.BossTotal, "boss ace must count 1")
	assert.Empty(t, result.Winners)
	assert.False(t, result.Replay)
}

func TestExactTierBeatsCloserNonExact(t *testing.T) {
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "p0",
			Cards: []cards.Card{
				card("c1", cards.King, cards.Spades),
				card("c2", cards.Eight, cards.Spades),
			}, // 21 exact
		},
		{
			SeatIndex: 1,
			PlayerID:  "p1",
			Cards: []cards.Card{
				card("c3", cards.King, cards.Hearts),
				card("c4", cards.Seven, cards.Hearts),
			}, // 20, off by one
		},
	}
	result := Evaluate(bossTwentyOne(), combos)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, TierExact, result.Tier)
	assert.Equal(t, "p0", result.Winners[0].PlayerID)
	assert.False(t, result.Replay)
}

func TestExactTierFewerCardsWinsRegardlessOfSuits(t *testing.T) {
	// Both exact 21: a 2-card combo with terrible suit overlap must still
	// beat a 3-card combo that mirrors the boss suits.
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "two-cards",
			Cards: []cards.Card{
				card("c1", cards.King, cards.Spades),
				card("c2", cards.Eight, cards.Spades),
			},
		},
		{
			SeatIndex: 1,
			PlayerID:  "three-cards",
			Cards: []cards.Card{
				card("c3", cards.King, cards.Hearts),
				card("c4", cards.Six, cards.Diamonds),
				card("c5", cards.Two, cards.Clubs),
			},
		},
	}
	result := Evaluate(bossTwentyOne(), combos)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, "two-cards", result.Winners[0].PlayerID)
}

func TestExactTierSuitDistanceBreaksCardCountTie(t *testing.T) {
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "mirror",
			Cards: []cards.Card{
				card("c1", cards.King, cards.Hearts),
				card("c2", cards.Eight, cards.Diamonds),
			}, // suits H+D overlap boss (H,D,C): distance 0+0+1+0 = 1
		},
		{
			SeatIndex: 1,
			PlayerID:  "offsuit",
			Cards: []cards.Card{
				card("c3", cards.King, cards.Spades),
				card("c4", cards.Eight, cards.Spades),
			}, // distance 1+1+1+2 = 5
		},
	}
	result := Evaluate(bossTwentyOne(), combos)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, "mirror", result.Winners[0].PlayerID)
}

func TestNonExactPrefersUnderOnStrictMix(t *testing.T) {
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "under",
			Cards: []cards.Card{
				card("c1", cards.King, cards.Hearts),
				card("c2", cards.Seven, cards.Hearts),
			}, // 20
		},
		{
			SeatIndex: 1,
			PlayerID:  "over",
			Cards: []cards.Card{
				card("c3", cards.King, cards.Spades),
				card("c4", cards.Nine, cards.Spades),
			}, // 22
		},
	}
	result := Evaluate(bossTwentyOne(), combos)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, TierNonExact, result.Tier)
	assert.Equal(t, "under", result.Winners[0].PlayerID)
}

func TestNonExactAllOverKeepsEveryone(t *testing.T) {
	// No under subset to narrow to: both stay, suit distance decides.
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "close-suits",
			Cards: []cards.Card{
				card("c1", cards.King, cards.Hearts),
				card("c2", cards.Nine, cards.Diamonds),
			}, // 22, dist 0+0+1+0 = 1
		},
		{
			SeatIndex: 1,
			PlayerID:  "far-suits",
			Cards: []cards.Card{
				card("c3", cards.King, cards.Spades),
				card("c4", cards.Nine, cards.Spades),
			}, // 22, dist 1+1+1+2 = 5
		},
	}
	result := Evaluate(bossTwentyOne(), combos)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, "close-suits", result.Winners[0].PlayerID)
}

func TestAceFlagsApplyPerCombo(t *testing.T) {
	// Same cards, different ace choices: only the flagged ace counts 11.
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "ace-high",
			Cards: []cards.Card{
				card("a1", cards.Ace, cards.Hearts),
				card("c1", cards.Ten, cards.Hearts),
			},
			AcesAsEleven: map[string]bool{"a1": true},
		}, // 21 exact
		{
			SeatIndex: 1,
			PlayerID:  "ace-low",
			Cards: []cards.Card{
				card("a2", cards.Ace, cards.Spades),
				card("c2", cards.Ten, cards.Spades),
			},
		}, // 11
	}
	result := Evaluate(bossTwentyOne(), combos)

	require.Len(t, result.Winners, 1)
	assert.Equal(t, TierExact, result.Tier)
	assert.Equal(t, "ace-high", result.Winners[0].PlayerID)
}

func TestTiedWinnersSignalReplay(t *testing.T) {
	combos := []Combo{
		{
			SeatIndex: 0,
			PlayerID:  "p0",
			Cards: []cards.Card{
				card("c1", cards.King, cards.Hearts),
				card("c2", cards.Eight, cards.Diamonds),
			},
		},
		{
			SeatIndex: 1,
			PlayerID:  "p1",
			Cards: []cards.Card{
				card("c3", cards.King, cards.Diamonds),
				card("c4", cards.Eight, cards.Hearts),
			},
		},
	}
	result := Evaluate(bossTwentyOne(), combos)

	assert.Len(t, result.Winners, 2)
	assert.True(t, result.Replay)
}
