package engine

// directions are the eight rays checked from a placed disc.
var directions = [...]struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Move is a legal placement together with the discs it captures.
type Move struct {
	Pos   Position
	Flips []Position
}

// flips returns every opposing disc captured by player placing at pos, or
// nil when the placement is not legal. A placement is legal only on an
// empty cell that brackets at least one run of opposing discs between the
// new disc and an existing disc of the player's color.
func (b Board) flips(player Disc, pos Position) []Position {
	if player != Black && player != White {
		return nil
	}
	if !pos.InBounds() || b[pos.Row][pos.Col] != Empty {
		return nil
	}

	opponent := player.Opponent()
	var all []Position

	for _, dir := range directions {
		r, c := pos.Row+dir.dr, pos.Col+dir.dc

		var run []Position
		for inBounds(r, c) && b[r][c] == opponent {
			run = append(run, Position{Row: r, Col: c})
			r += dir.dr
			c += dir.dc
		}

		// A run counts only when it ends on the player's own disc.
		// Runs that reach an empty cell or the board edge stay put.
		if len(run) > 0 && inBounds(r, c) && b[r][c] == player {
			all = append(all, run...)
		}
	}

	return all
}

// wouldFlip reports whether player placing at (row, col) captures along at
// least one ray. It is the allocation-free form of flips used when only
// legality matters.
func (b Board) wouldFlip(player Disc, row, col int) bool {
	opponent := player.Opponent()

	for _, dir := range directions {
		r, c := row+dir.dr, col+dir.dc

		seen := false
		for inBounds(r, c) && b[r][c] == opponent {
			seen = true
			r += dir.dr
			c += dir.dc
		}

		if seen && inBounds(r, c) && b[r][c] == player {
			return true
		}
	}

	return false
}

// hasMove reports whether player has at least one legal placement.
func (b Board) hasMove(player Disc) bool {
	if player != Black && player != White {
		return false
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty && b.wouldFlip(player, r, c) {
				return true
			}
		}
	}

	return false
}
