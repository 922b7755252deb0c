package board

// rookCorners maps each side and wing to the rook's starting square.
var rookCorners = [2][2]Square{
	White: {QueenSide: A1, KingSide: H1},
	Black: {QueenSide: A8, KingSide: H8},
}

// kingStart maps each side to the king's starting square.
var kingStart = [2]Square{White: E1, Black: E8}

// ApplyMove returns the position after m is played. The receiver is not
// modified. No legality checking is done: the move is board arithmetic,
// and LegalMoves is the place to ask whether it is allowed.
//
// It panics with a *SquareError if either square is off the board.
func (p Position) ApplyMove(m Move) Position {
	for _, sq := range []Square{m.From, m.To} {
		if !sq.IsValid() {
			panic(&SquareError{Index: int(sq)})
		}
	}

	next := p
	piece := p.PieceAt(m.From)
	captured := p.PieceAt(m.To)
	us := piece.Color()
	pt := piece.Type()

	enPassantCapture := p.isEnPassantCapture(m)
	rookMove, castling := p.castlingRook(m)

	// Move the piece
	next.squares[m.From] = NoPiece
	next.squares[m.To] = piece

	// En passant removes the pawn that jumped past the target, which stands
	// beside the capturing pawn rather than on the destination.
	if enPassantCapture {
		jumped := newSquare(m.To.File(), m.From.Rank())
		next.squares[jumped] = NoPiece
	}

	// Handle promotion
	if m.IsPromotion() && piece != NoPiece {
		next.squares[m.To] = NewPiece(m.Promotion, us)
	}

	// Castling moves the rook to the square the king crossed
	if castling {
		next.squares[rookMove.To] = next.squares[rookMove.From]
		next.squares[rookMove.From] = NoPiece
	}

	// Set en passant square if double pawn push
	next.enPassant = NoSquare
	if pt == Pawn && m.From.RelativeRank(us) == 2 && m.To.RelativeRank(us) == 4 && m.From.File() == m.To.File() {
		next.enPassant = newSquare(m.From.File(), m.From.Rank()+us.Forward())
	}

	// Castling rights only ever decay
	switch pt {
	case King:
		next.castling = next.castling.without(us, KingSide).without(us, QueenSide)
	case Rook:
		for _, w := range []Wing{QueenSide, KingSide} {
			if m.From == rookCorners[us][w] {
				next.castling = next.castling.without(us, w)
			}
		}
	}

	for c := range rookCorners {
		for w, corner := range rookCorners[c] {
			if m.From == corner || m.To == corner {
				next.rookGone[c][w] = true
			}
		}
	}

	if pt == Pawn || captured != NoPiece || enPassantCapture {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = p.halfMoveClock + 1
	}

	if p.sideToMove == Black {
		next.fullMoveNumber = p.fullMoveNumber + 1
	}
	next.sideToMove = p.sideToMove.Other()

	return next
}

// isEnPassantCapture reports whether m is a pawn's diagonal step onto the
// current en-passant target.
func (p Position) isEnPassantCapture(m Move) bool {
	if p.enPassant == NoSquare || m.To != p.enPassant {
		return false
	}
	return p.PieceAt(m.From).Type() == Pawn && m.From.File() != m.To.File()
}

// castlingRook returns the rook's accompanying move when m is a king's
// two-file step from its starting square.
func (p Position) castlingRook(m Move) (Move, bool) {
	piece := p.PieceAt(m.From)
	if piece.Type() != King || !m.To.IsValid() {
		return NoMove, false
	}
	us := piece.Color()
	if m.From != kingStart[us] || m.To.Rank() != m.From.Rank() {
		return NoMove, false
	}

	var wing Wing
	var dir int
	switch m.To.File() - m.From.File() {
	case 2:
		wing, dir = KingSide, 1
	case -2:
		wing, dir = QueenSide, -1
	default:
		return NoMove, false
	}

	corner := rookCorners[us][wing]
	if p.PieceAt(corner) != NewPiece(Rook, us) {
		return NoMove, false
	}
	crossed, _ := m.From.Offset(dir, 0)
	return NewMove(corner, crossed), true
}
