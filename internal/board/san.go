package board

import (
	"fmt"
	"strings"
)

// SAN converts a legal move to Standard Algebraic Notation. Checks are
// marked with '+'; mate is not distinguished.
func (p Position) SAN(m Move) string {
	piece := p.PieceAt(m.From)
	if piece == NoPiece || !m.To.IsValid() {
		return m.String() // Fallback to UCI
	}

	var sb strings.Builder

	// Castling
	if m.IsCastling(p) {
		if m.To.File() > m.From.File() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	} else {
		pt := piece.Type()

		// Piece letter and disambiguation (not for pawns)
		if pt != Pawn {
			sb.WriteByte("PNBRQK"[pt])
			sb.WriteString(p.disambiguation(m, piece))
		}

		// Capture marker
		if m.IsCapture(p) {
			if pt == Pawn {
				// Pawn captures include the file of origin
				sb.WriteByte('a' + byte(m.From.File()-1))
			}
			sb.WriteByte('x')
		}

		sb.WriteString(m.To.String())

		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte("PNBRQK"[m.Promotion])
		}
	}

	if p.ApplyMove(m).InCheck() {
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed when another
// piece of the same kind can also reach the destination.
func (p Position) disambiguation(m Move, piece Piece) string {
	var candidates []Square
	others := p.Occupied(piece.Color())
	for others != 0 {
		sq := others.PopFirst()
		if sq == m.From || p.squares[sq] != piece {
			continue
		}
		if p.LegalMoves(sq).Contains(m.To) {
			candidates = append(candidates, sq)
		}
	}

	// No ambiguity
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == m.From.File() {
			sameFile = true
		}
		if sq.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + m.From.File() - 1))
	}
	if !sameRank {
		return string(rune('0' + m.From.Rank()))
	}
	return m.From.String()
}

// ParseSAN parses a SAN string and returns the matching legal move.
func (p Position) ParseSAN(s string) (Move, error) {
	orig := s
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "+#!?")

	switch s {
	case "O-O", "0-0", "O-O-O", "0-0-0":
		long := len(s) == 5
		for _, m := range p.LegalMoveList() {
			if m.IsCastling(p) && (m.To.File() < m.From.File()) == long {
				return m, nil
			}
		}
		return NoMove, fmt.Errorf("%q: %w", orig, ErrIllegalMove)
	}

	// Parse promotion
	promo := NoPieceType
	if idx := strings.Index(s, "="); idx >= 0 && idx+1 < len(s) {
		promo = PieceTypeFromChar(s[idx+1])
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	// Determine piece type
	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		pt = PieceTypeFromChar(s[0])
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, fmt.Errorf("%q: %w", orig, ErrInvalidMove)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, fmt.Errorf("%q: %w", orig, ErrInvalidMove)
	}
	s = s[:len(s)-2]

	// Disambiguation (file, rank, or both)
	disambigFile, disambigRank := 0, 0
	for _, c := range s {
		if c >= 'a' && c <= 'h' {
			disambigFile = int(c-'a') + 1
		} else if c >= '1' && c <= '8' {
			disambigRank = int(c - '0')
		}
	}

	for _, m := range p.LegalMoveList() {
		if m.To != dest || p.PieceAt(m.From).Type() != pt || m.IsCastling(p) {
			continue
		}
		if disambigFile != 0 && m.From.File() != disambigFile {
			continue
		}
		if disambigRank != 0 && m.From.Rank() != disambigRank {
			continue
		}
		if isCapture && !m.IsCapture(p) {
			continue
		}
		if m.Promotion != promo && !(promo == NoPieceType && m.Promotion == Queen) {
			continue
		}
		return m, nil
	}

	return NoMove, fmt.Errorf("%q: %w", orig, ErrIllegalMove)
}
