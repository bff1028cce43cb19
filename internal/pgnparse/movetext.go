package pgnparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/freeeve/pgnmusic/internal/game"
)

var (
	headerRegex     = regexp.MustCompile(`^\[\s*(\w+)\s+"((?:[^"\\]|\\.)*)"\s*\]$`)
	moveNumberRegex = regexp.MustCompile(`^\d+\.+`)
	nagRegex        = regexp.MustCompile(`^\$\d+$`)
	sanRegex        = regexp.MustCompile(`^(?:[KQRBNP]?[a-h]?[1-8]?[x:-]?[a-h][1-8](?:=?[QRBN])?|O-O(?:-O)?|--)(?:[+#]{1,2})?$`)
)

// MovetextGrammar reads PGN as a flat sequence of tag pairs and SAN tokens.
// Comments, variations, NAGs, move numbers and annotation glyphs are
// dropped. A result token or a tag pair after moves ends a game.
type MovetextGrammar struct{}

func (MovetextGrammar) Name() string { return "movetext" }

func (MovetextGrammar) Parse(text string) ([]game.Game, error) {
	var (
		games []game.Game
		cur   game.Game
		open  bool
	)
	flush := func() {
		if open {
			if cur.Moves == nil {
				cur.Moves = []game.Move{}
			}
			games = append(games, cur)
		}
		cur = game.Game{}
		open = false
	}
	setTag := func(key, value string) {
		if cur.Tags == nil {
			cur.Tags = make(map[string]string)
		}
		cur.Tags[key] = value
	}

	toks, err := lexMovetext(text)
	if err != nil {
		return nil, err
	}
	for _, tok := range toks {
		switch tok.kind {
		case tokenTag:
			if len(cur.Moves) > 0 {
				flush()
			}
			setTag(tok.key, tok.value)
			open = true
		case tokenMove:
			cur.Moves = append(cur.Moves, game.NotationMove(tok.value))
			open = true
		case tokenResult:
			if _, ok := cur.Tags["Result"]; !ok {
				setTag("Result", tok.value)
			}
			open = true
			flush()
		}
	}
	flush()
	return games, nil
}

type tokenKind uint8

const (
	tokenTag tokenKind = iota
	tokenMove
	tokenResult
)

type token struct {
	kind  tokenKind
	key   string
	value string
}

// lexMovetext splits PGN text into tag, move and result tokens.
func lexMovetext(text string) ([]token, error) {
	var toks []token
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '[':
			end := tagEnd(text, i)
			if end < 0 {
				return nil, fmt.Errorf("unterminated tag pair at offset %d", i)
			}
			raw := text[i : end+1]
			m := headerRegex.FindStringSubmatch(raw)
			if m == nil {
				return nil, fmt.Errorf("malformed tag pair %q", raw)
			}
			toks = append(toks, token{kind: tokenTag, key: m[1], value: strings.ReplaceAll(m[2], `\"`, `"`)})
			i = end + 1
		case c == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unterminated comment at offset %d", i)
			}
			i += end + 1
		case c == ';' || c == '%':
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				i = len(text)
			} else {
				i += end + 1
			}
		case c == '(':
			end, err := skipVariation(text, i)
			if err != nil {
				return nil, err
			}
			i = end
		case c == ')' || c == '}' || c == ']':
			return nil, fmt.Errorf("unbalanced %q at offset %d", c, i)
		default:
			start := i
			for i < len(text) && !strings.ContainsRune(" \t\r\n[]{}();", rune(text[i])) {
				i++
			}
			tok, ok, err := classifyWord(text[start:i])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", start, err)
			}
			if ok {
				toks = append(toks, tok)
			}
		}
	}
	return toks, nil
}

// tagEnd returns the offset of the ']' closing the tag pair opening at i, or
// -1. Brackets inside the quoted value do not close the pair.
func tagEnd(text string, i int) int {
	quoted := false
	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			if quoted {
				j++
			}
		case '"':
			quoted = !quoted
		case ']':
			if !quoted {
				return j
			}
		}
	}
	return -1
}

// skipVariation returns the offset just past the variation opening at i.
func skipVariation(text string, i int) (int, error) {
	depth := 0
	for j := i; j < len(text); j++ {
		switch text[j] {
		case '{':
			end := strings.IndexByte(text[j:], '}')
			if end < 0 {
				return 0, fmt.Errorf("unterminated comment at offset %d", j)
			}
			j += end
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("unterminated variation at offset %d", i)
}

// classifyWord turns one movetext word into a token. ok is false for words
// that carry no move, such as a bare move number or a NAG.
func classifyWord(word string) (tok token, ok bool, err error) {
	word = moveNumberRegex.ReplaceAllString(word, "")
	if word == "" || nagRegex.MatchString(word) {
		return token{}, false, nil
	}
	switch word {
	case "1-0", "0-1", "1/2-1/2", "*":
		return token{kind: tokenResult, value: word}, true, nil
	}

	san := strings.TrimSuffix(strings.TrimRight(word, "!?"), "e.p.")
	if san == "" {
		return token{}, false, nil
	}
	san = normalizeCastle(san)
	if !sanRegex.MatchString(san) {
		return token{}, false, fmt.Errorf("not a move: %q", word)
	}
	return token{kind: tokenMove, value: san}, true, nil
}

// normalizeCastle rewrites zero-digit castling ("0-0", "0-0-0") to letters.
func normalizeCastle(san string) string {
	switch {
	case strings.HasPrefix(san, "0-0-0"):
		return "O-O-O" + san[5:]
	case strings.HasPrefix(san, "0-0"):
		return "O-O" + san[3:]
	}
	return san
}
