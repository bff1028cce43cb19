package sonify

import "github.com/freeeve/pgnmusic/internal/game"

// Options selects how a conversion renders notes. It applies to every move
// of every game in one call.
type Options struct {
	// Chromatic renders through the per-file chromatic tables instead of
	// natural note letters.
	Chromatic bool
	// Strict replays each game's SAN on a board and rests every move from
	// the first illegal one onwards.
	Strict bool
}

// chromaticTable maps file index (A=0..H=7) to eight pitches, one per rank.
// Each file starts one semitone above the previous one. File H repeats A.
var chromaticTable = [8][8]string{
	{"A3", "A#3", "B3", "C4", "C#4", "D4", "D#4", "E4"},
	{"A#3", "B3", "C4", "C#4", "D4", "D#4", "E4", "F4"},
	{"B3", "C4", "C#4", "D4", "D#4", "E4", "F4", "F#4"},
	{"C4", "C#4", "D4", "D#4", "E4", "F4", "F#4", "G4"},
	{"C#4", "D4", "D#4", "E4", "F4", "F#4", "G4", "G#4"},
	{"D4", "D#4", "E4", "F4", "F#4", "G4", "G#4", "A4"},
	{"D#4", "E4", "F4", "F#4", "G4", "G#4", "A4", "A#4"},
	{"A3", "A#3", "B3", "C4", "C#4", "D4", "D#4", "E4"},
}

// Render turns a classified square into a note name.
//
// Natural mode returns file and rank verbatim, except that file H has no
// note letter and is played as A. Chromatic mode looks the square up in
// chromaticTable. Unparseable renders as Rest in both modes.
func Render(sq Square, opts Options) string {
	if !sq.Valid() {
		return Rest
	}
	if opts.Chromatic {
		return chromaticTable[sq.FileIndex()][sq.RankIndex()]
	}
	file := sq.File
	if file == 'H' {
		file = 'A'
	}
	return string([]byte{file, sq.Rank})
}

// Note classifies and renders a single move.
func Note(move game.Move, ply int, opts Options) string {
	return Render(Classify(move, ply), opts)
}
