package sonify

import (
	"regexp"

	"github.com/freeeve/pgnmusic/internal/game"
)

var (
	castleRegex      = regexp.MustCompile(`^O-O(-O)?([+#]{1,2})?$`)
	queenSideRegex   = regexp.MustCompile(`^O-O-O`)
	destinationRegex = regexp.MustCompile(`(?i)([a-h][1-8])(?:=[QRBN])?(?:[+#]{1,2})?$`)
)

// Classify resolves the destination square of move, played at the given
// zero-based ply of its game. Even plies are White's, odd plies Black's;
// the side only matters for castling. It never fails: anything it cannot
// read yields Unparseable.
func Classify(move game.Move, ply int) Square {
	if move.HasSquare() {
		// Coordinates from the parser win over the text.
		if len(move.Col) != 1 || len(move.Row) != 1 {
			return Unparseable
		}
		return NewSquare(move.Col[0], move.Row[0])
	}

	text := move.Text
	if castleRegex.MatchString(text) {
		rank := byte('1')
		if ply%2 != 0 {
			rank = '8'
		}
		// O-O-O must be tested first, it also starts with O-O.
		if queenSideRegex.MatchString(text) {
			return Square{File: 'C', Rank: rank}
		}
		return Square{File: 'G', Rank: rank}
	}

	if m := destinationRegex.FindStringSubmatch(text); m != nil {
		return NewSquare(m[1][0], m[1][1])
	}
	return Unparseable
}
