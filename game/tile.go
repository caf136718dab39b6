package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

type TileColor string

const (
	ColorBlack  TileColor = "black"
	ColorRed    TileColor = "red"
	ColorBlue   TileColor = "blue"
	ColorOrange TileColor = "orange"
)

var tileColors = [4]TileColor{ColorBlack, ColorRed, ColorBlue, ColorOrange}

// DeckSize is 2 copies of numbers 1-13 in 4 colors, plus 2 jokers.
const DeckSize = 106

const initialHandSize = 14

// Tile is immutable once created; only its location (pool, a hand, the
// board) changes over the course of a game.
type Tile struct {
	ID     string    `json:"id"`
	Number int       `json:"number,omitempty"`
	Color  TileColor `json:"color,omitempty"`
	Joker  bool      `json:"joker,omitempty"`
}

// Value returns the face value of the tile. A joker on its own is worth
// nothing; inside a combination it is worth the slot it fills, which is
// computed by the combination, not the tile.
func (t Tile) Value() int {
	if t.Joker {
		return 0
	}
	return t.Number
}

func (t Tile) String() string {
	if t.Joker {
		return "J"
	}
	return fmt.Sprintf("%d%s", t.Number, strings.ToUpper(string(t.Color[0])))
}

// NewDeck builds the full 106 tile deck, shuffled.
func NewDeck() []Tile {
	tiles := make([]Tile, 0, DeckSize)

	for copies := 0; copies < 2; copies++ {
		for _, color := range tileColors {
			for number := 1; number <= 13; number++ {
				tiles = append(tiles, Tile{
					ID:     uuid.NewString(),
					Number: number,
					Color:  color,
				})
			}
		}
	}

	tiles = append(tiles,
		Tile{ID: uuid.NewString(), Joker: true},
		Tile{ID: uuid.NewString(), Joker: true},
	)

	rand.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	return tiles
}

// Deal removes count tiles from the front of the pool.
func Deal(pool []Tile, count int) (dealt, rest []Tile, err error) {
	if count > len(pool) {
		return nil, pool, ErrPoolExhausted
	}
	return pool[:count], pool[count:], nil
}
