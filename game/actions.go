package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Action is a closed set: PlaceTiles or DrawTile.
type Action interface {
	isAction()
}

// Grouping proposes one combination by tile id. The declared fields are
// only consulted when every referenced tile is a joker, since nothing else
// pins down what the combination stands for.
type Grouping struct {
	TileIDs        []string
	DeclaredKind   CombinationKind
	DeclaredNumber int
	DeclaredColor  TileColor
}

type PlaceTiles struct {
	Groupings []Grouping
}

type DrawTile struct{}

func (PlaceTiles) isAction() {}
func (DrawTile) isAction()   {}

const initialMeldThreshold = 30

// Apply runs one action for the given player. On any error the game is left
// untouched: all validation happens before the first mutation.
func (g *Game) Apply(playerID string, action Action) error {
	switch g.Status {
	case StatusFinished:
		return ErrGameFinished
	case StatusWaiting:
		return ErrGameNotStarted
	}

	player := g.Player(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}
	if current := g.CurrentPlayer(); current == nil || current.ID != playerID {
		return ErrNotYourTurn
	}

	switch act := action.(type) {
	case PlaceTiles:
		return g.placeTiles(player, act)
	case DrawTile:
		g.drawTile(player)
		return nil
	default:
		return fmt.Errorf("unknown action type %T", action)
	}
}

func (g *Game) placeTiles(player *Player, act PlaceTiles) error {
	if len(act.Groupings) == 0 {
		return ErrEmptyPlacement
	}

	inHand := make(map[string]Tile, len(player.Hand))
	for _, t := range player.Hand {
		inHand[t.ID] = t
	}

	used := make(map[string]bool)
	fromHand := make(map[string]bool)
	fromBoard := make(map[string]bool)

	proposed := make([]Combination, 0, len(act.Groupings))
	meldValue := 0

	for _, grouping := range act.Groupings {
		tiles := make([]Tile, 0, len(grouping.TileIDs))
		allJokers := true

		for _, id := range grouping.TileIDs {
			if used[id] {
				return fmt.Errorf("%w: %s", ErrTileNotOwned, id)
			}
			used[id] = true

			tile, ok := inHand[id]
			if ok {
				fromHand[id] = true
			} else {
				// Board tiles may only be reused once the player has
				// completed their initial meld.
				if !player.InitialMeld {
					return fmt.Errorf("%w: %s", ErrTileNotOwned, id)
				}
				tile, ok = g.Board.FindTile(id)
				if !ok {
					return fmt.Errorf("%w: %s", ErrTileNotOwned, id)
				}
				fromBoard[id] = true
			}
			if !tile.Joker {
				allJokers = false
			}
			tiles = append(tiles, tile)
		}

		kind, err := ValidateCombination(tiles)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCombination, err)
		}

		combo := Combination{ID: uuid.NewString(), Kind: kind, Tiles: tiles}
		if allJokers {
			if grouping.DeclaredKind == "" || grouping.DeclaredNumber == 0 {
				return fmt.Errorf("%w: all-joker combination needs a declared number", ErrInvalidCombination)
			}
			combo.Kind = grouping.DeclaredKind
			combo.DeclaredNumber = grouping.DeclaredNumber
			combo.DeclaredColor = grouping.DeclaredColor
		}

		meldValue += combinationValue(combo)
		proposed = append(proposed, combo)
	}

	if !player.InitialMeld && meldValue < initialMeldThreshold {
		return ErrInitialMeldTooLow
	}

	board, err := g.Board.rebuild(fromBoard)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBoardInvalid, err)
	}
	board = append(board, proposed...)

	// Commit.
	hand := make([]Tile, 0, len(player.Hand))
	for _, t := range player.Hand {
		if !fromHand[t.ID] {
			hand = append(hand, t)
		}
	}
	player.Hand = hand
	player.InitialMeld = true
	g.Board = board

	if len(player.Hand) == 0 {
		g.finish(player)
		return nil
	}
	g.advanceTurn()
	return nil
}

// drawTile moves one tile from the pool to the hand. An empty pool is not an
// error: the turn still advances with nothing drawn.
func (g *Game) drawTile(player *Player) {
	if len(g.Pool) > 0 {
		player.Hand = append(player.Hand, g.Pool[0])
		g.Pool = g.Pool[1:]
	}
	g.advanceTurn()
}
