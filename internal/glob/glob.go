// Package glob compiles wildcard patterns over qualified type names.
//
// A single star matches within one name segment: it never crosses the
// namespace separator '.' or the nested-type separator '$'. A double star
// matches any sequence of characters. Everything else is literal, and a
// compiled pattern always has to match the whole name.
//
//	p := glob.Compile("example.com/shop/model.*")
//	p.Match("example.com/shop/model.Order")       // true
//	p.Match("example.com/shop/model.Order$Line")  // false
package glob

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TokenKind identifies one piece of a tokenized pattern.
type TokenKind int

const (
	Literal TokenKind = iota
	Star
	DoubleStar
)

func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Star:
		return "star"
	case DoubleStar:
		return "double-star"
	default:
		return "unknown"
	}
}

// Token is a literal run or a wildcard.
type Token struct {
	Kind TokenKind
	Text string
}

const (
	segmentExpr = `[^.$]*`
	anyExpr     = `(?s:.*)`
)

// Tokenize splits a pattern into literal and wildcard tokens, scanning left
// to right. At each position "**" is tried before "*", so "***" yields a
// DoubleStar followed by a Star.
func Tokenize(pattern string) []Token {
	var tokens []Token
	start := 0
	for i := 0; i < len(pattern); {
		if pattern[i] != '*' {
			i++
			continue
		}
		if start < i {
			tokens = append(tokens, Token{Kind: Literal, Text: pattern[start:i]})
		}
		if i+1 < len(pattern) && pattern[i+1] == '*' {
			tokens = append(tokens, Token{Kind: DoubleStar, Text: "**"})
			i += 2
		} else {
			tokens = append(tokens, Token{Kind: Star, Text: "*"})
			i++
		}
		start = i
	}
	if start < len(pattern) {
		tokens = append(tokens, Token{Kind: Literal, Text: pattern[start:]})
	}
	return tokens
}

// invalidByteExpr stands in for a byte that is not valid UTF-8. The matcher
// decodes such bytes in candidates to U+FFFD, so this still matches them.
const invalidByteExpr = `\x{FFFD}`

// QuoteLiteral escapes s so that it matches itself and nothing else. Invalid
// UTF-8 bytes match any invalid byte or U+FFFD in the candidate.
func QuoteLiteral(s string) string {
	var sb strings.Builder
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(regexp.QuoteMeta(s[start:i]))
			sb.WriteString(invalidByteExpr)
			i++
			start = i
			continue
		}
		i += size
	}
	sb.WriteString(regexp.QuoteMeta(s[start:]))
	return sb.String()
}

// Render turns tokens into an anchored regular expression.
func Render(tokens []Token) string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, tok := range tokens {
		switch tok.Kind {
		case Literal:
			sb.WriteString(QuoteLiteral(tok.Text))
		case Star:
			sb.WriteString(segmentExpr)
		case DoubleStar:
			sb.WriteString(anyExpr)
		}
	}
	sb.WriteString("$")
	return sb.String()
}

// Pattern is a compiled glob.
type Pattern struct {
	source string
	tokens []Token
	re     *regexp.Regexp
}

// Compile compiles a glob. Every string is a valid glob, so it cannot fail.
func Compile(pattern string) *Pattern {
	tokens := Tokenize(pattern)
	return &Pattern{
		source: pattern,
		tokens: tokens,
		// Quoted literals and the two fixed wildcard expressions always form
		// a valid expression.
		re: regexp.MustCompile(Render(tokens)),
	}
}

// CompileAll compiles globs in order.
func CompileAll(patterns []string) []*Pattern {
	compiled := make([]*Pattern, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, Compile(p))
	}
	return compiled
}

// Match reports whether name matches the pattern in full.
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// String returns the source glob.
func (p *Pattern) String() string { return p.source }

// Expr returns the rendered regular expression.
func (p *Pattern) Expr() string { return p.re.String() }

// Tokens returns a copy of the pattern's tokens.
func (p *Pattern) Tokens() []Token {
	return append([]Token(nil), p.tokens...)
}
