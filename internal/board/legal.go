package board

// CanCaptureKing reports whether the side to move could, in one pseudo-move,
// land on the square holding the opposing king. After a move has been
// applied this is the question "did the mover leave its king en prise".
//
// It panics with an error wrapping ErrKingMissing if the opposing king is
// not on the board.
func (p Position) CanCaptureKing() bool {
	us := p.sideToMove
	target := p.mustKingSquare(us.Other())

	pieces := p.Occupied(us)
	for pieces != 0 {
		if p.PseudoMoves(pieces.PopFirst()).Contains(target) {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move is in check: with the turn handed
// to the opponent and nothing else changed, could the opponent take the king.
//
// It panics with an error wrapping ErrKingMissing if the king is not on the board.
func (p Position) InCheck() bool {
	return p.WithSideToMove(p.sideToMove.Other()).CanCaptureKing()
}

// LegalMoves returns the destinations the piece on from may legally move to:
// its pseudo-moves that do not leave its own king capturable by the reply,
// plus castling destinations for a king. Only pieces of the side to move
// have legal moves; any other square yields an empty set.
func (p Position) LegalMoves(from Square) SquareSet {
	piece := p.PieceAt(from)
	if piece == NoPiece || piece.Color() != p.sideToMove {
		return EmptySet
	}

	var legal SquareSet
	pseudo := p.PseudoMoves(from)
	for pseudo != 0 {
		to := pseudo.PopFirst()
		if !p.ApplyMove(NewMove(from, to)).CanCaptureKing() {
			legal = legal.Add(to)
		}
	}

	if piece.Type() == King {
		legal = legal.Union(p.castlingMoves(from))
	}
	return legal
}

// IsLegal reports whether m may be played in the position. A pawn reaching
// the last rank must name its promotion piece; other moves must not.
func (p Position) IsLegal(m Move) bool {
	if !p.LegalMoves(m.From).Contains(m.To) {
		return false
	}
	promoting := p.PieceAt(m.From).Type() == Pawn && m.To.RelativeRank(p.sideToMove) == BoardSide
	if promoting {
		return m.IsPromotion()
	}
	return m.Promotion == NoPieceType
}

// castlingMoves returns the king's castling destinations. The king must be on
// its starting square and not in check, the wing's right must be held, the
// wing's original rook must still be on its corner with nothing in between,
// and the square
// the king crosses and the one it lands on must not be attacked.
func (p Position) castlingMoves(from Square) SquareSet {
	us := p.sideToMove
	them := us.Other()
	if from != kingStart[us] || p.PieceAt(from) != NewPiece(King, us) {
		return EmptySet
	}
	if p.IsAttacked(from, them) {
		return EmptySet
	}

	var moves SquareSet
	for _, w := range []Wing{QueenSide, KingSide} {
		if !p.castling.Has(us, w) || p.rookGone[us][w] {
			continue
		}
		corner := rookCorners[us][w]
		if p.PieceAt(corner) != NewPiece(Rook, us) {
			continue
		}

		dir := 1
		if w == QueenSide {
			dir = -1
		}

		pathEmpty := true
		for sq, _ := from.Offset(dir, 0); sq != corner; sq, _ = sq.Offset(dir, 0) {
			if !p.IsEmpty(sq) {
				pathEmpty = false
				break
			}
		}
		if !pathEmpty {
			continue
		}

		crossed, _ := from.Offset(dir, 0)
		dest, _ := from.Offset(2*dir, 0)
		if p.IsAttacked(crossed, them) || p.IsAttacked(dest, them) {
			continue
		}
		moves = moves.Add(dest)
	}
	return moves
}

// LegalMoveList returns every legal move for the side to move. A pawn move to
// the last rank is expanded into its four promotions.
func (p Position) LegalMoveList() []Move {
	var moves []Move
	us := p.sideToMove

	pieces := p.Occupied(us)
	for pieces != 0 {
		from := pieces.PopFirst()
		isPawn := p.squares[from].Type() == Pawn

		targets := p.LegalMoves(from)
		for targets != 0 {
			to := targets.PopFirst()
			if isPawn && to.RelativeRank(us) == BoardSide {
				for _, promo := range []PieceType{Queen, Rook, Bishop, Knight} {
					moves = append(moves, NewPromotion(from, to, promo))
				}
				continue
			}
			moves = append(moves, NewMove(from, to))
		}
	}
	return moves
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// This is the standard way to verify move generation correctness.
func Perft(p Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := p.LegalMoveList()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		nodes += Perft(p.ApplyMove(m), depth-1)
	}
	return nodes
}
