package pgnparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/freeeve/pgn/v3"

	"github.com/freeeve/pgnmusic/internal/game"
)

// ScannerGrammar reads multi-game PGN with the freeeve/pgn scanner. Games are
// replayed on a board, so a game with an illegal move fails the whole text.
type ScannerGrammar struct{}

var (
	zeroCastleRegex = regexp.MustCompile(`(^|[\s.])0-0(?:-0)?\b`)
	enPassantRegex  = regexp.MustCompile(`([a-h][1-8])\s*e\.p\.`)
)

func (ScannerGrammar) Name() string { return "scanner" }

func (ScannerGrammar) Parse(text string) ([]game.Game, error) {
	ps := pgn.NewPGNScanner(strings.NewReader(cleanMovetext(text)))

	var games []game.Game
	for ps.Next() {
		g, err := ps.Scan()
		if err != nil {
			return nil, fmt.Errorf("scan pgn game %d: %w", len(games)+1, err)
		}
		// Trailing whitespace scans as an empty game.
		if len(g.Tags) == 0 && len(g.Moves) == 0 {
			continue
		}
		converted, err := fromScannedGame(g)
		if err != nil {
			return nil, fmt.Errorf("replay pgn game %d: %w", len(games)+1, err)
		}
		games = append(games, converted)
	}
	return games, nil
}

// cleanMovetext rewrites zero-digit castling to letters and drops "e.p."
// markers outside tag lines. The scanner reads "0-0" as a number and splits
// "exd6e.p." into two tokens.
func cleanMovetext(text string) string {
	if !strings.Contains(text, "0-0") && !strings.Contains(text, "e.p.") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			continue
		}
		line = zeroCastleRegex.ReplaceAllStringFunc(line, func(m string) string {
			return strings.ReplaceAll(m, "0", "O")
		})
		lines[i] = enPassantRegex.ReplaceAllString(line, "$1")
	}
	return strings.Join(lines, "\n")
}

// fromScannedGame copies g, which the scanner reuses on the next Scan, keeping
// for every move its destination square and SAN.
func fromScannedGame(g *pgn.Game) (game.Game, error) {
	out := game.Game{}
	if len(g.Tags) > 0 {
		out.Tags = make(map[string]string, len(g.Tags))
		for k, v := range g.Tags {
			out.Tags[k] = v
		}
	}

	pos, err := startPosition(out.Tags)
	if err != nil {
		return game.Game{}, err
	}
	out.Moves = make([]game.Move, 0, len(g.Moves))
	for _, mv := range g.Moves {
		to := mv.To.String()
		san := playMove(pos, mv)
		out.Moves = append(out.Moves, game.SquareMove(to[:1], to[1:]).WithText(san))
	}
	return out, nil
}

// startPosition returns the position named by the FEN tag, or the standard
// starting position when there is none.
func startPosition(tags map[string]string) (*pgn.GameState, error) {
	fen, ok := tags["FEN"]
	if !ok || strings.TrimSpace(fen) == "" {
		return pgn.NewStartingPosition(), nil
	}
	pos, err := pgn.NewGame(fen)
	if err != nil {
		return nil, fmt.Errorf("fen %q: %w", fen, err)
	}
	return pos, nil
}
