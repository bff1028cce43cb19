package sonify

// Square is a destination square: File 'A'..'H', Rank '1'..'8'.
// The zero value is the Unparseable sentinel.
type Square struct {
	File byte
	Rank byte
}

// Unparseable is the result of classifying a move with no resolvable square.
var Unparseable = Square{}

// Rest is the note rendered for Unparseable in every mode.
const Rest = "X"

// NewSquare builds a square from a file letter (either case) and rank digit.
// It returns Unparseable when they do not name a board square.
func NewSquare(file, rank byte) Square {
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	s := Square{File: file, Rank: rank}
	if !s.Valid() {
		return Unparseable
	}
	return s
}

// Valid reports whether s names a board square.
func (s Square) Valid() bool {
	return s.File >= 'A' && s.File <= 'H' && s.Rank >= '1' && s.Rank <= '8'
}

// FileIndex returns 0 for file A through 7 for file H.
func (s Square) FileIndex() int {
	return int(s.File - 'A')
}

// RankIndex returns 0 for rank 1 through 7 for rank 8.
func (s Square) RankIndex() int {
	return int(s.Rank - '1')
}

// String returns the square as "E4", or Rest when unparseable.
func (s Square) String() string {
	if !s.Valid() {
		return Rest
	}
	return string([]byte{s.File, s.Rank})
}
