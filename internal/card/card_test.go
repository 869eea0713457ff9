package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitColor(t *testing.T) {
	assert.Equal(t, Red, Hearts.Color())
	assert.Equal(t, Red, Diamonds.Color())
	assert.Equal(t, Black, Clubs.Color())
	assert.Equal(t, Black, Spades.Color())
	assert.Equal(t, Color(""), Suit("stars").Color())
}

func TestRanksAreOrdered(t *testing.T) {
	for i, r := range Ranks {
		assert.Equal(t, i+1, r.Value, r.Name)
	}
}

func TestRankedIDRoundTrip(t *testing.T) {
	c := New(Hearts, Queen)
	assert.Equal(t, ID("hearts.queen"), c.ID)
	assert.False(t, c.FaceUp)
	assert.Nil(t, c.Position)

	suit, rank, err := ParseRankedID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, Hearts, suit)
	assert.Equal(t, Queen, rank)
}

func TestParseRankedIDErrors(t *testing.T) {
	cases := []ID{"hearts", "stars.ace", "hearts.zero", "a.b.c"}
	for _, id := range cases {
		_, _, err := ParseRankedID(id)
		assert.Error(t, err, string(id))
	}
}

func TestNames(t *testing.T) {
	c := New(Spades, King)
	assert.Equal(t, "King of Spades", c.Name())
	assert.Equal(t, "K♠", c.Label())
	assert.False(t, c.IsPlain())

	p := NewPlain("blue", 3)
	assert.True(t, p.IsPlain())
	assert.True(t, p.FaceUp)
	assert.Equal(t, "blue.3", p.Name())
}
