// Package lexer turns Pascal-like source text into a stream of classified
// tokens with byte-accurate locations.
//
// The scanner is entirely hand-written. Every multi-character token is built
// on one primitive, takeWhile, which consumes the maximal prefix of the input
// satisfying a per-rune predicate. Keeping the machinery this small is what
// lets error messages point at the exact offending byte.
package lexer

import "fmt"

// ----------------------
// Lexer Types definition
// ----------------------

// TokenKind is the classification of a single token together with its parsed
// payload. It is a plain comparable struct so that two kinds compare equal
// exactly when their variant and payload match.
//
// Only the field selected by ID is meaningful; the others stay zero. Use the
// constructor functions below rather than struct literals so the construction
// path stays explicit.
type TokenKind struct {
	ID   Kind
	Int  uint64  // payload for Integer
	Real float64 // payload for Decimal
	Text string  // payload for Identifier and QuotedString
}

// IntegerKind builds the kind for an unsigned integer literal.
func IntegerKind(value uint64) TokenKind {
	return TokenKind{ID: Integer, Int: value}
}

// DecimalKind builds the kind for a floating point literal.
func DecimalKind(value float64) TokenKind {
	return TokenKind{ID: Decimal, Real: value}
}

// IdentifierKind builds the kind for an identifier.
//
// Keywords are not recognized here. All identifier-shaped text is classified
// alike and resolved by later passes.
func IdentifierKind(text string) TokenKind {
	return TokenKind{ID: Identifier, Text: text}
}

// QuotedStringKind builds the kind for a string literal. The scanner does not
// produce this kind yet; it exists so downstream passes can already match on it.
func QuotedStringKind(text string) TokenKind {
	return TokenKind{ID: QuotedString, Text: text}
}

// SymbolKind builds the kind for a punctuation or operator symbol.
func SymbolKind(id Kind) TokenKind {
	if id < Asterisk {
		panic(fmt.Sprintf("SymbolKind called with payload-carrying kind %s", id))
	}

	return TokenKind{ID: id}
}

// Token is one lexical unit: a kind plus the half-open byte range [Start, End)
// it occupies in the input handed to Tokenize. Offsets are bytes, not runes.
//
// The lexer never resolves offsets against a file. Binding (Start, End) to a
// source.Span is the code map's job.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// NewToken pairs a kind with its byte range.
func NewToken(kind TokenKind, start, end int) Token {
	return Token{Kind: kind, Start: start, End: end}
}

// scanner is the cursor over not-yet-consumed input. It is threaded by value:
// every step returns the advanced copy, so offset == original length minus
// remaining length holds by construction and separate Tokenize calls share
// nothing.
type scanner struct {
	remaining []byte
	offset    int
}

func newScanner(src []byte) scanner {
	return scanner{remaining: src}
}

func (s scanner) advance(n int) scanner {
	return scanner{remaining: s.remaining[n:], offset: s.offset + n}
}

// nextToken skips whitespace and comments, then scans one token. The third
// result is false once the input is exhausted; that is the normal terminal
// outcome, not an error.
func (s scanner) nextToken() (Token, scanner, bool, error) {
	s = s.advance(skipWhitespaceAndComments(s.remaining))

	if len(s.remaining) == 0 {
		return Token{}, s, false, nil
	}

	start := s.offset

	kind, length, err := tokenizeSingle(s.remaining)
	if err != nil {
		return Token{}, s, false, &LexError{Offset: start, Err: err}
	}

	s = s.advance(length)

	return NewToken(kind, start, s.offset), s, true, nil
}

// Tokenize scans the whole of src and returns its tokens in source order.
//
// The result is all-or-nothing: the first byte the scanner cannot classify
// aborts the run with a *LexError carrying the absolute offset of the failed
// token attempt, and any tokens collected so far are discarded.
func Tokenize(src []byte) ([]Token, error) {
	var tokens []Token

	cursor := newScanner(src)

	for {
		token, next, ok, err := cursor.nextToken()
		if err != nil {
			return nil, err
		}

		if !ok {
			return tokens, nil
		}

		tokens = append(tokens, token)
		cursor = next
	}
}
