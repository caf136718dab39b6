package game

// Board is the committed set of combinations on the table. Every tile on it
// appears in exactly one combination.
type Board []Combination

func (b Board) FindTile(id string) (Tile, bool) {
	for _, c := range b {
		for _, t := range c.Tiles {
			if t.ID == id {
				return t, true
			}
		}
	}
	return Tile{}, false
}

// rebuild returns the board with the consumed tiles removed, re-validating
// every combination that lost tiles. Fully consumed combinations disappear.
func (b Board) rebuild(consumed map[string]bool) (Board, error) {
	next := make(Board, 0, len(b))

	for _, c := range b {
		remaining := make([]Tile, 0, len(c.Tiles))
		for _, t := range c.Tiles {
			if !consumed[t.ID] {
				remaining = append(remaining, t)
			}
		}

		switch {
		case len(remaining) == len(c.Tiles):
			next = append(next, c)
		case len(remaining) == 0:
			// Gone entirely.
		default:
			kind, err := ValidateCombination(remaining)
			if err != nil {
				return nil, err
			}
			leftover := c
			leftover.Kind = kind
			leftover.Tiles = remaining
			next = append(next, leftover)
		}
	}

	return next, nil
}
