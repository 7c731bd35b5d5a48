package engine

// Error is the engine's error type.
type Error string

func (e Error) Error() string { return string(e) }

// ErrIllegalMove is returned by Apply when the position is not a legal
// move for the player, the player is not the side to move, or the game is
// already over. The game state is left untouched.
const ErrIllegalMove Error = "illegal move"

// Game is the authoritative state of one match: the board and the side to
// move. Mutate it only through Apply, which also resolves passes, so the
// side returned by Current always has a legal move while the game runs.
type Game struct {
	board   Board
	current Disc
}

// NewGame returns the standard starting position with Black to move.
func NewGame() *Game {
	return &Game{board: NewBoard(), current: Black}
}

// Reset returns the game to the starting position.
func (g *Game) Reset() {
	*g = Game{board: NewBoard(), current: Black}
}

// Board returns a snapshot of the grid. The copy stays valid across
// subsequent moves.
func (g *Game) Board() Board { return g.board }

// Current returns the side to move. Once the game is over the value
// carries no meaning.
func (g *Game) Current() Disc { return g.current }

// Over reports whether the game has ended, that is neither player has a
// legal move left. A full board is always over.
func (g *Game) Over() bool {
	return !g.board.hasMove(Black) && !g.board.hasMove(White)
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

// LegalMoves returns every legal placement for player on the current
// board, each with the discs it would flip. The result depends only on the
// board contents, not on whose turn it is, and is empty when player has no
// move.
func (g *Game) LegalMoves(player Disc) []Move {
	var moves []Move
	if player != Black && player != White {
		return moves
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := Position{Row: r, Col: c}
			if flips := g.board.flips(player, pos); len(flips) > 0 {
				moves = append(moves, Move{Pos: pos, Flips: flips})
			}
		}
	}

	return moves
}

// IsLegal reports whether player may place a disc at pos on the current
// board. Like LegalMoves it ignores whose turn it is.
func (g *Game) IsLegal(player Disc, pos Position) bool {
	return len(g.board.flips(player, pos)) > 0
}

// Receipt describes the outcome of a successful Apply: the discs that were
// flipped, the side that had to pass afterwards (Empty when nobody did),
// and whether the move ended the game.
type Receipt struct {
	Player Disc
	Pos    Position
	Flips  []Position
	Passed Disc
	Over   bool
}

// Apply places player's disc at pos and flips every bracketed run. The
// placement must be legal and player must be the side to move; otherwise
// ErrIllegalMove is returned and nothing changes. After a legal move the
// opponent is next to move unless they have no legal reply, in which case
// the turn stays with player and the receipt records the pass; when
// neither side can move the game is over.
func (g *Game) Apply(player Disc, pos Position) (Receipt, error) {
	if player != g.current || g.Over() {
		return Receipt{}, ErrIllegalMove
	}

	flips := g.board.flips(player, pos)
	if len(flips) == 0 {
		return Receipt{}, ErrIllegalMove
	}

	g.board[pos.Row][pos.Col] = player
	for _, f := range flips {
		g.board[f.Row][f.Col] = player
	}

	receipt := Receipt{Player: player, Pos: pos, Flips: flips}

	opponent := player.Opponent()
	switch {
	case g.board.hasMove(opponent):
		g.current = opponent
	case g.board.hasMove(player):
		receipt.Passed = opponent
	default:
		receipt.Over = true
	}

	return receipt, nil
}

// Score returns the disc counts for both sides.
func (g *Game) Score() (black, white int) {
	return g.board.Count(Black), g.board.Count(White)
}

// Winner returns the color holding strictly more discs, or Empty for a
// tie. It is only meaningful once Over reports true.
func (g *Game) Winner() Disc {
	black, white := g.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}

	return Empty
}
