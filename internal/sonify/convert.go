package sonify

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/freeeve/pgnmusic/internal/game"
	"github.com/freeeve/pgnmusic/internal/pgnparse"
)

// ConvertGame returns one note per move of g, in move order. A game without
// moves yields an empty slice.
func ConvertGame(g game.Game, opts Options) []string {
	notes := make([]string, len(g.Moves))
	legal := len(g.Moves)
	if opts.Strict {
		legal = pgnparse.LegalPrefix(g)
	}
	for i, mv := range g.Moves {
		if i >= legal {
			notes[i] = Rest
			continue
		}
		notes[i] = Note(mv, i, opts)
	}
	return notes
}

// ConvertGames converts every game, keeping game order.
func ConvertGames(games []game.Game, opts Options) [][]string {
	out := make([][]string, len(games))
	for i, g := range games {
		out[i] = ConvertGame(g, opts)
	}
	return out
}

// ConvertPGNText parses text with the default grammar chain and converts
// every game. Text that no grammar can read yields an empty result.
func ConvertPGNText(text string, opts Options) [][]string {
	return NewConverter(Config{Options: opts, Logger: zerolog.Nop()}).Text(text)
}

// Config configures a Converter.
type Config struct {
	Options Options
	Grammar pgnparse.Grammar // Defaults to pgnparse.Default()
	Logger  zerolog.Logger   // Zero value logs nothing
}

// Converter converts PGN text with a fixed grammar and options. It holds no
// mutable state and may be shared between goroutines.
type Converter struct {
	opts    Options
	grammar pgnparse.Grammar
	log     zerolog.Logger
}

// NewConverter creates a Converter, filling in defaults.
func NewConverter(cfg Config) *Converter {
	if cfg.Grammar == nil {
		cfg.Grammar = pgnparse.Default()
	}
	return &Converter{
		opts:    cfg.Options,
		grammar: cfg.Grammar,
		log:     cfg.Logger,
	}
}

// Options returns the rendering options of c.
func (c *Converter) Options() Options {
	return c.opts
}

// Text converts all games found in text. Parse failure is not an error: it
// gives an empty result, the same as empty input.
func (c *Converter) Text(text string) [][]string {
	log := c.log
	if log.Debug().Enabled() {
		log = log.With().Str("conversion", uuid.NewString()).Logger()
	}

	var (
		games []game.Game
		used  pgnparse.Grammar
		err   error
	)
	if chain, ok := c.grammar.(pgnparse.Chain); ok {
		games, used, err = chain.ParseWith(text)
	} else {
		games, err = c.grammar.Parse(text)
		used = c.grammar
	}
	if err != nil || len(games) == 0 {
		ev := log.Debug().Int("bytes", len(text))
		if err != nil && !errors.Is(err, pgnparse.ErrNoGames) {
			ev = ev.Err(err)
		}
		ev.Msg("no games parsed")
		return [][]string{}
	}

	out := c.convert(games, log)
	log.Debug().
		Str("grammar", used.Name()).
		Int("games", len(games)).
		Bool("chromatic", c.opts.Chromatic).
		Bool("strict", c.opts.Strict).
		Msg("pgn converted")
	return out
}

// Reader reads PGN (plain or zstd-compressed) from r and converts it. Only
// read failures are reported as errors.
func (c *Converter) Reader(r io.Reader) ([][]string, error) {
	text, err := pgnparse.ReadText(r)
	if err != nil {
		c.log.Warn().Err(err).Msg("read pgn failed")
		return nil, err
	}
	return c.Text(text), nil
}

// Games converts already parsed games with the options of c.
func (c *Converter) Games(games []game.Game) [][]string {
	return c.convert(games, c.log)
}

// convert runs ConvertGames and logs every move that rests.
func (c *Converter) convert(games []game.Game, log zerolog.Logger) [][]string {
	out := ConvertGames(games, c.opts)
	if !log.Debug().Enabled() {
		return out
	}
	for gi, notes := range out {
		for ply, n := range notes {
			if n != Rest {
				continue
			}
			log.Debug().
				Int("game", gi).
				Int("ply", ply).
				Str("move", games[gi].Moves[ply].Text).
				Msg("move rests")
		}
	}
	return out
}
