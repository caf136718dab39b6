package game

type CombinationKind string

const (
	KindRun   CombinationKind = "run"
	KindGroup CombinationKind = "group"
)

// Combination is an ordered sequence of tiles committed to the board.
// Declared* pin down an all-joker combination, which has no concrete tiles
// to infer its number and color from.
type Combination struct {
	ID             string          `json:"id"`
	Kind           CombinationKind `json:"kind"`
	Tiles          []Tile          `json:"tiles"`
	DeclaredNumber int             `json:"declared_number,omitempty"`
	DeclaredColor  TileColor       `json:"declared_color,omitempty"`
}

// ValidateCombination decides whether tiles form a legal run or group.
// Group rules are checked before run rules: a sequence whose concrete tiles
// all share one number reads as a group attempt, everything else as a run
// attempt, so the returned reason is always deterministic.
func ValidateCombination(tiles []Tile) (CombinationKind, error) {
	if len(tiles) < 3 {
		return "", ErrTooShort
	}

	var concrete []Tile
	for _, t := range tiles {
		if !t.Joker {
			concrete = append(concrete, t)
		}
	}

	// All jokers: a valid placeholder, but the caller must declare what it
	// stands for at placement time.
	if len(concrete) == 0 {
		return KindGroup, nil
	}

	if sameNumber(concrete) {
		return validateGroup(tiles, concrete)
	}
	if sameColor(concrete) {
		return validateRun(tiles, concrete)
	}
	if distinctColors(concrete) {
		return "", ErrMixedNumbers
	}
	return "", ErrNotSameColor
}

func validateGroup(tiles, concrete []Tile) (CombinationKind, error) {
	if len(tiles) > 4 {
		return "", ErrTooLong
	}
	if !distinctColors(concrete) {
		return "", ErrDuplicateColor
	}
	return KindGroup, nil
}

func validateRun(tiles, concrete []Tile) (CombinationKind, error) {
	if len(tiles) > 13 {
		return "", ErrTooLong
	}

	seen := make(map[int]bool, len(concrete))
	min, max := concrete[0].Number, concrete[0].Number
	for _, t := range concrete {
		if seen[t.Number] {
			return "", ErrNotConsecutive
		}
		seen[t.Number] = true
		if t.Number < min {
			min = t.Number
		}
		if t.Number > max {
			max = t.Number
		}
	}

	// Jokers fill the interior gaps; any left over extend the edges, which
	// only works while the sequence stays within 1-13.
	span := max - min + 1
	if span > len(tiles) {
		return "", ErrNotConsecutive
	}
	return KindRun, nil
}

// combinationValue is the point value of a validated combination, with each
// joker worth the slot it fills. Spare run jokers extend the high end as far
// as 13 allows before falling back to the low end.
func combinationValue(c Combination) int {
	n := len(c.Tiles)

	if c.Kind == KindGroup {
		number := c.DeclaredNumber
		for _, t := range c.Tiles {
			if !t.Joker {
				number = t.Number
				break
			}
		}
		return number * n
	}

	min, max := 14, 0
	for _, t := range c.Tiles {
		if t.Joker {
			continue
		}
		if t.Number < min {
			min = t.Number
		}
		if t.Number > max {
			max = t.Number
		}
	}
	if max == 0 {
		// All jokers standing in for a declared run.
		min, max = c.DeclaredNumber, c.DeclaredNumber
	}

	spare := n - (max - min + 1)
	high := max + spare
	if high > 13 {
		high = 13
	}
	start := high - n + 1
	return n * (2*start + n - 1) / 2
}

func sameNumber(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Number != tiles[0].Number {
			return false
		}
	}
	return true
}

func sameColor(tiles []Tile) bool {
	for _, t := range tiles {
		if t.Color != tiles[0].Color {
			return false
		}
	}
	return true
}

func distinctColors(tiles []Tile) bool {
	seen := make(map[TileColor]bool, len(tiles))
	for _, t := range tiles {
		if seen[t.Color] {
			return false
		}
		seen[t.Color] = true
	}
	return true
}
