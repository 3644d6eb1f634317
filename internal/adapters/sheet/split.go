package sheet

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Split cuts a stylesheet into its top-level rules. A rule ends with the brace
// that closes its block, or with a semicolon for block-less at-rules such as
// @import. Whitespace and comments between rules are dropped.
func Split(text string) ([]string, error) {
	lexer := css.NewLexer(parse.NewInputString(text))

	rules := make([]string, 0)
	pos, start, depth := 0, -1, 0

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, zerr.Wrap(domain.ErrInvalidStylesheet, err.Error())
			}
			break
		}

		end := pos + len(data)
		if start < 0 && depth == 0 && (tt == css.WhitespaceToken || tt == css.CommentToken) {
			pos = end
			continue
		}
		if start < 0 {
			start = pos
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth < 0 {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidStylesheet, "unbalanced closing brace"), domain.MetaIndex, pos)
			}
			if depth == 0 {
				rules = append(rules, text[start:end])
				start = -1
			}
		case css.SemicolonToken:
			if depth == 0 {
				rules = append(rules, text[start:end])
				start = -1
			}
		}

		pos = end
	}

	if start >= 0 {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrInvalidStylesheet, "unterminated rule"),
			domain.MetaIndex, start,
		)
	}
	return rules, nil
}

// validRule reports whether rule is exactly one rule the CSS grammar accepts.
func validRule(rule string) bool {
	rules, err := Split(rule)
	if err != nil || len(rules) != 1 || strings.TrimSpace(rules[0]) == "" {
		return false
	}

	parser := css.NewParser(parse.NewInputString(rule), false)
	for {
		gt, _, _ := parser.Next()
		if gt == css.ErrorGrammar {
			return !parser.HasParseError()
		}
	}
}
