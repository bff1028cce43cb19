// Package game holds the parser-neutral move and game records consumed by
// the note conversion.
package game

// MoveKind tells which shape a Move carries.
type MoveKind uint8

const (
	KindNotation MoveKind = 0 // Only the raw move text is known
	KindSquare   MoveKind = 1 // The parser resolved the destination square
)

// Move is one ply as handed over by a PGN parser.
//
// A KindSquare move carries its destination in Col ("a".."h", any case) and
// Row ("1".."8"); Text may still hold the SAN the parser read. A
// KindNotation move carries only Text, e.g. "Nxe5", "O-O", "e8=Q#" or "".
type Move struct {
	Kind MoveKind
	Col  string
	Row  string
	Text string
}

// SquareMove returns a move whose destination is already known.
func SquareMove(col, row string) Move {
	return Move{Kind: KindSquare, Col: col, Row: row}
}

// NotationMove returns a move known only by its notation text.
func NotationMove(text string) Move {
	return Move{Kind: KindNotation, Text: text}
}

// WithText returns a copy of m carrying the given notation text.
func (m Move) WithText(text string) Move {
	m.Text = text
	return m
}

// HasSquare reports whether the move carries a non-empty file and rank.
func (m Move) HasSquare() bool {
	return m.Kind == KindSquare && m.Col != "" && m.Row != ""
}

// Game is one parsed game. Only Moves matters for conversion.
type Game struct {
	Tags  map[string]string
	Moves []Move
}

// Tag returns the header value for key, or "" when absent.
func (g Game) Tag(key string) string {
	return g.Tags[key]
}

// NotationGame builds a game from raw move texts.
func NotationGame(texts ...string) Game {
	moves := make([]Move, len(texts))
	for i, t := range texts {
		moves[i] = NotationMove(t)
	}
	return Game{Moves: moves}
}

// SANs returns the notation text of every move, in order.
func (g Game) SANs() []string {
	out := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		out[i] = m.Text
	}
	return out
}
