package pgnparse

import (
	"strings"

	"github.com/freeeve/pgn/v3"

	"github.com/freeeve/pgnmusic/internal/game"
)

// LegalPrefix replays the SAN of g and returns how many leading moves are
// legal. Replay starts from the FEN tag when g has one, otherwise from the
// standard starting position; a FEN that does not parse makes no move legal.
// Check, mate and annotation marks are ignored.
func LegalPrefix(g game.Game) int {
	pos, err := startPosition(g.Tags)
	if err != nil {
		return 0
	}
	for i, mv := range g.Moves {
		san := normalizeCastle(strings.TrimRight(mv.Text, "+#!?"))
		if san == "" {
			return i
		}
		m, err := pgn.ParseSAN(pos, san)
		if err != nil {
			return i
		}
		if err := pgn.ApplyMove(pos, m); err != nil {
			return i
		}
	}
	return len(g.Moves)
}
