package board

// direction is one step along a ray, in files and ranks.
type direction struct {
	df, dr int
}

// movement describes how a piece type moves on an empty board: the rays it
// may travel along and how many steps it may take on each.
type movement struct {
	rays  []direction
	limit int
}

var (
	orthogonal = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = []direction{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	allDirs    = append(append([]direction{}, orthogonal...), diagonal...)
	knightJump = []direction{
		{-1, 2}, {1, 2},
		{-2, 1}, {2, 1},
		{-2, -1}, {2, -1},
		{-1, -2}, {1, -2},
	}
)

// movements is indexed by PieceType. Pawns are colour dependent and are
// handled by pawnMoves instead.
var movements = [...]movement{
	Knight: {rays: knightJump, limit: 1},
	Bishop: {rays: diagonal, limit: BoardSide - 1},
	Rook:   {rays: orthogonal, limit: BoardSide - 1},
	Queen:  {rays: allDirs, limit: BoardSide - 1},
	King:   {rays: allDirs, limit: 1},
}

// PseudoMoves returns the squares the piece on from may move to, following
// its movement pattern and the occupancy of the board, without regard to
// whether the move would expose its own king. Castling is not included.
// An empty square yields an empty set.
func (p Position) PseudoMoves(from Square) SquareSet {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return EmptySet
	}
	if piece.Type() == Pawn {
		return p.pawnMoves(from, piece.Color())
	}
	return p.rayMoves(from, piece, false)
}

// rayMoves walks each ray of the piece's movement outward from from. Empty
// squares are added and scanning continues; the first occupied square ends
// the ray and is added only if it holds an opposing piece, or any piece at
// all when includeOwn is set (attack queries).
func (p Position) rayMoves(from Square, piece Piece, includeOwn bool) SquareSet {
	var moves SquareSet
	mv := movements[piece.Type()]
	us := piece.Color()

	for _, d := range mv.rays {
		sq := from
		for step := 0; step < mv.limit; step++ {
			next, ok := sq.Offset(d.df, d.dr)
			if !ok {
				break
			}
			target := p.squares[next]
			if target == NoPiece {
				moves = moves.Add(next)
				sq = next
				continue
			}
			if includeOwn || target.Color() != us {
				moves = moves.Add(next)
			}
			break
		}
	}
	return moves
}

// pawnMoves generates advances and captures for a pawn of color c on from.
func (p Position) pawnMoves(from Square, c Color) SquareSet {
	var moves SquareSet
	fwd := c.Forward()

	// Single and double advances onto empty squares
	if one, ok := from.Offset(0, fwd); ok && p.squares[one] == NoPiece {
		moves = moves.Add(one)
		if from.RelativeRank(c) == 2 {
			if two, ok := from.Offset(0, 2*fwd); ok && p.squares[two] == NoPiece {
				moves = moves.Add(two)
			}
		}
	}

	// Diagonal captures, including onto the en-passant target
	for _, df := range []int{-1, 1} {
		sq, ok := from.Offset(df, fwd)
		if !ok {
			continue
		}
		target := p.squares[sq]
		if (target != NoPiece && target.Color() != c) || sq == p.enPassant {
			moves = moves.Add(sq)
		}
	}

	return moves
}

// attacks returns every square the piece on from bears on, whether empty,
// opposing or friendly. Pawns attack only diagonally.
func (p Position) attacks(from Square) SquareSet {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return EmptySet
	}
	if piece.Type() != Pawn {
		return p.rayMoves(from, piece, true)
	}

	var s SquareSet
	for _, df := range []int{-1, 1} {
		if sq, ok := from.Offset(df, piece.Color().Forward()); ok {
			s = s.Add(sq)
		}
	}
	return s
}

// IsAttacked reports whether any piece of color by bears on sq.
func (p Position) IsAttacked(sq Square, by Color) bool {
	pieces := p.Occupied(by)
	for pieces != 0 {
		if p.attacks(pieces.PopFirst()).Contains(sq) {
			return true
		}
	}
	return false
}
