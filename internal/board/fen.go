package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a validated Position.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return Position{}, fmt.Errorf("need at least 4 fields, got %d: %w", len(parts), ErrInvalidFEN)
	}

	pos := emptyPosition()

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(&pos, parts[0]); err != nil {
		return Position{}, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return Position{}, fmt.Errorf("invalid side to move %q: %w", parts[1], ErrInvalidFEN)
	}

	// Parse castling rights (field 2)
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return Position{}, err
	}

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return Position{}, fmt.Errorf("invalid en passant square %q: %w", parts[3], ErrInvalidFEN)
		}
		pos.enPassant = sq
	}

	// Parse half-move clock (field 4, optional)
	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return Position{}, fmt.Errorf("invalid half-move clock %q: %w", parts[4], ErrInvalidFEN)
		}
		pos.halfMoveClock = hmc
	}

	// Parse full-move number (field 5, optional)
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return Position{}, fmt.Errorf("invalid full-move number %q: %w", parts[5], ErrInvalidFEN)
		}
		pos.fullMoveNumber = fmn
	}

	if err := pos.Validate(); err != nil {
		return Position{}, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. For tests and constants.
func MustParseFEN(fen string) Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSide {
		return fmt.Errorf("need 8 ranks, got %d: %w", len(ranks), ErrInvalidFEN)
	}

	for i, rankStr := range ranks {
		rank := BoardSide - i // FEN starts from rank 8
		file := 1

		for _, c := range rankStr {
			if file > BoardSide {
				return fmt.Errorf("too many squares in rank %d: %w", rank, ErrInvalidFEN)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				file += int(c - '0')
				continue
			}

			// Place a piece
			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character %q: %w", c, ErrInvalidFEN)
			}
			pos.squares[newSquare(file, rank)] = piece
			file++
		}

		if file != BoardSide+1 {
			return fmt.Errorf("rank %d has %d squares: %w", rank, file-1, ErrInvalidFEN)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	pos.castling = CastlingRights{}
	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.castling.WhiteKingSide = true
		case 'Q':
			pos.castling.WhiteQueenSide = true
		case 'k':
			pos.castling.BlackKingSide = true
		case 'q':
			pos.castling.BlackQueenSide = true
		default:
			return fmt.Errorf("invalid castling character %q: %w", c, ErrInvalidFEN)
		}
	}

	return nil
}

// FEN returns the FEN representation of the position.
func (p Position) FEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := BoardSide; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= BoardSide; file++ {
			piece := p.squares[newSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	// Side to move
	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())

	// En passant
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))

	return sb.String()
}
