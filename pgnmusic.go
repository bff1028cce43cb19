// Package pgnmusic turns chess games into note names, one note per move.
//
// Each move is reduced to its destination square, then rendered either as a
// natural note (file letter plus rank, file H played as A) or through a
// per-file chromatic table. Moves that name no square become the rest "X".
//
//	notes := pgnmusic.ConvertPGNText(pgnText, pgnmusic.Options{})
//	// [["E4" "E5" "F3" "C6"] ...]
package pgnmusic

import (
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/freeeve/pgnmusic/internal/game"
	"github.com/freeeve/pgnmusic/internal/logx"
	"github.com/freeeve/pgnmusic/internal/sonify"
)

type (
	Game      = game.Game
	Move      = game.Move
	Square    = sonify.Square
	Options   = sonify.Options
	Converter = sonify.Converter
)

// Rest is the note of a move without a readable destination square.
const Rest = sonify.Rest

// Unparseable is the square of such a move.
var Unparseable = sonify.Unparseable

var (
	SquareMove   = game.SquareMove
	NotationMove = game.NotationMove
	NotationGame = game.NotationGame
)

// Classify returns the destination square of move played at ply.
func Classify(move Move, ply int) Square { return sonify.Classify(move, ply) }

// Render returns the note name of sq.
func Render(sq Square, opts Options) string { return sonify.Render(sq, opts) }

// Note classifies and renders one move.
func Note(move Move, ply int, opts Options) string { return sonify.Note(move, ply, opts) }

// ConvertGame returns the notes of one game.
func ConvertGame(g Game, opts Options) []string { return sonify.ConvertGame(g, opts) }

// ConvertGames returns the notes of every game, in order.
func ConvertGames(games []Game, opts Options) [][]string { return sonify.ConvertGames(games, opts) }

// ConvertPGNText parses PGN text and returns the notes of every game. Text
// that cannot be parsed gives an empty result.
func ConvertPGNText(text string, opts Options) [][]string {
	return sonify.ConvertPGNText(text, opts)
}

// ConvertPGNReader is ConvertPGNText over plain or zstd-compressed input.
func ConvertPGNReader(r io.Reader, opts Options) ([][]string, error) {
	return sonify.NewConverter(sonify.Config{Options: opts, Logger: zerolog.Nop()}).Reader(r)
}

// Config configures New.
type Config struct {
	Chromatic bool
	Strict    bool
	Debug     bool      // Log at debug level instead of info
	LogOutput io.Writer // Where to log; nil disables logging
}

// ConfigFromEnv reads PGNMUSIC_CHROMATIC, PGNMUSIC_STRICT and PGNMUSIC_DEBUG.
// Unset or unparsable values leave the field false.
func ConfigFromEnv() Config {
	return Config{
		Chromatic: envBool("PGNMUSIC_CHROMATIC"),
		Strict:    envBool("PGNMUSIC_STRICT"),
		Debug:     envBool("PGNMUSIC_DEBUG"),
	}
}

func envBool(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// New returns a Converter for cfg.
func New(cfg Config) *Converter {
	log := zerolog.Nop()
	if cfg.LogOutput != nil {
		level := zerolog.InfoLevel
		if cfg.Debug {
			level = zerolog.DebugLevel
		}
		log = logx.NewLogger(cfg.LogOutput, level)
	}
	return sonify.NewConverter(sonify.Config{
		Options: Options{Chromatic: cfg.Chromatic, Strict: cfg.Strict},
		Logger:  log,
	})
}
