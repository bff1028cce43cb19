package pgnparse

import (
	"strings"

	"github.com/freeeve/pgn/v3"
)

var promoLetters = [...]string{
	pgn.PromoQueen:  "Q",
	pgn.PromoRook:   "R",
	pgn.PromoBishop: "B",
	pgn.PromoKnight: "N",
}

// playMove applies mv to pos and returns its SAN, check marks included.
// mv must be legal in pos.
func playMove(pos *pgn.GameState, mv pgn.Mv) string {
	var b strings.Builder
	piece := upperPiece(pos.PieceAt(mv.From))
	to := mv.To.String()

	switch {
	case piece == 'K' && mv.Flags&4 != 0:
		if mv.To.File() > mv.From.File() {
			b.WriteString("O-O")
		} else {
			b.WriteString("O-O-O")
		}
	case piece == 'P':
		if mv.From.File() != mv.To.File() {
			b.WriteByte(byte('a' + mv.From.File()))
			b.WriteByte('x')
		}
		b.WriteString(to)
		if mv.Promo != pgn.NoPromo && int(mv.Promo) < len(promoLetters) {
			b.WriteByte('=')
			b.WriteString(promoLetters[mv.Promo])
		}
	default:
		b.WriteByte(piece)
		b.WriteString(disambiguation(pos, mv, piece))
		if pos.PieceAt(mv.To) != 0 {
			b.WriteByte('x')
		}
		b.WriteString(to)
	}

	pgn.MakeMove(pos, mv)
	switch {
	case pos.IsCheckmate():
		b.WriteByte('#')
	case pos.IsInCheck():
		b.WriteByte('+')
	}
	return b.String()
}

// disambiguation returns the from-file, from-rank or both when another piece
// of the same kind can also reach the destination.
func disambiguation(pos *pgn.GameState, mv pgn.Mv, piece byte) string {
	var rivals, sameFile, sameRank bool
	for _, other := range pgn.GenerateLegalMoves(pos) {
		if other.To != mv.To || other.From == mv.From || upperPiece(pos.PieceAt(other.From)) != piece {
			continue
		}
		rivals = true
		sameFile = sameFile || other.From.File() == mv.From.File()
		sameRank = sameRank || other.From.Rank() == mv.From.Rank()
	}
	from := mv.From.String()
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	}
	return from
}

func upperPiece(p byte) byte {
	if p >= 'a' && p <= 'z' {
		return p - 'a' + 'A'
	}
	return p
}
