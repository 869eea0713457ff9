package slot

import (
	"testing"

	"github.com/matryer/is"

	"github.com/arcanaland/solitaire/internal/card"
)

func TestTopCard(t *testing.T) {
	is := is.New(t)
	s := New("tableau.0", Tableau, card.Position{Top: 200, Left: 20})

	_, ok := s.TopCard()
	is.True(!ok)

	s.Pile = append(s.Pile, "spades.king", "hearts.queen")
	top, ok := s.TopCard()
	is.True(ok)
	is.Equal(top, card.ID("hearts.queen"))
	is.Equal(s.Len(), 2)
	is.Equal(s.IndexOf("spades.king"), 0)
	is.Equal(s.IndexOf("clubs.ace"), -1)
}

func TestSettledAt(t *testing.T) {
	is := is.New(t)
	tab := New("tableau.0", Tableau, card.Position{Top: 200, Left: 20})
	found := New("foundation.0", Foundation, card.Position{Top: 20, Left: 380})

	is.Equal(tab.SettledAt(3, 30), card.Position{Top: 290, Left: 20})
	is.Equal(found.SettledAt(3, 30), card.Position{Top: 20, Left: 380})

	tab.Pile = append(tab.Pile, "spades.king")
	is.Equal(tab.NextSettled(30), card.Position{Top: 230, Left: 20})
}

func TestParseFamily(t *testing.T) {
	is := is.New(t)
	for _, f := range []Family{Generic, Tableau, Foundation, Stock} {
		got, err := ParseFamily(f.String())
		is.NoErr(err)
		is.Equal(got, f)
	}
	_, err := ParseFamily("cell")
	is.True(err != nil)
}
