// Package pgnparse turns PGN text into parser-neutral game records.
//
// Two grammars are provided. ScannerGrammar reads full, legal PGN through a
// chess library and resolves every destination square. MovetextGrammar is a
// lenient single-rule reader of movetext that keeps the raw SAN and never
// checks legality. Chain tries grammars in order and stops at the first one
// that yields games.
package pgnparse

import (
	"errors"
	"fmt"

	"github.com/freeeve/pgnmusic/internal/game"
)

// ErrNoGames is returned when no grammar produced a game.
var ErrNoGames = errors.New("pgnparse: no games")

// Grammar parses PGN text into games.
type Grammar interface {
	Name() string
	Parse(text string) ([]game.Game, error)
}

// Chain is an ordered list of grammars tried one after another.
type Chain []Grammar

// Default returns the standard chain: full PGN first, movetext second.
func Default() Chain {
	return Chain{ScannerGrammar{}, MovetextGrammar{}}
}

// Name lists the chained grammar names.
func (c Chain) Name() string {
	name := "chain("
	for i, g := range c {
		if i > 0 {
			name += ","
		}
		name += g.Name()
	}
	return name + ")"
}

// Parse returns the games of the first grammar that succeeds with at least
// one game. When every grammar fails the error wraps ErrNoGames.
func (c Chain) Parse(text string) ([]game.Game, error) {
	games, _, err := c.ParseWith(text)
	return games, err
}

// ParseWith is Parse that also reports which grammar produced the games.
func (c Chain) ParseWith(text string) ([]game.Game, Grammar, error) {
	var lastErr error
	for _, g := range c {
		games, err := g.Parse(text)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", g.Name(), err)
			continue
		}
		if len(games) == 0 {
			continue
		}
		return games, g, nil
	}
	if lastErr != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoGames, lastErr)
	}
	return nil, nil, ErrNoGames
}
