package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// takeWhile consumes the maximal prefix of data whose runes satisfy pred,
// evaluated left to right with a short circuit at the first rejection.
// It returns the consumed slice and its byte length, or errNoMatch when the
// very first rune already fails the predicate (or data is empty).
//
// Predicates are ordinary closures and may carry state, which is how the
// number tokenizer tracks its "seen a decimal point" flag without any extra
// scanner machinery.
func takeWhile(data []byte, pred func(rune) bool) ([]byte, int, error) {
	length := 0

	for length < len(data) {
		r, size := utf8.DecodeRune(data[length:])
		if !pred(r) {
			break
		}

		length += size
	}

	if length == 0 {
		return nil, 0, errNoMatch
	}

	return data[:length], length, nil
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// tokenizeIdentifier scans a maximal run of letters, digits and underscores.
// The first rune must not be a digit. Keyword recognition deliberately does
// not happen here; see IdentifierKind.
func tokenizeIdentifier(data []byte) (TokenKind, int, error) {
	if len(data) == 0 {
		return TokenKind{}, 0, ErrUnexpectedEOF
	}

	first, _ := utf8.DecodeRune(data)
	if unicode.IsDigit(first) {
		return TokenKind{}, 0, errors.New("identifiers can't start with a number")
	}

	word, length, err := takeWhile(data, isIdentifierRune)
	if err != nil {
		return TokenKind{}, 0, err
	}

	return IdentifierKind(string(word)), length, nil
}

// tokenizeNumber scans a maximal run of decimal digits containing at most one
// decimal point. A second '.' ends the scan without being consumed, so input
// like "12.3.456" yields Decimal(12.3) over four bytes and leaves the rest
// for the following calls (Dot, then Integer(456)).
func tokenizeNumber(data []byte) (TokenKind, int, error) {
	if len(data) == 0 {
		return TokenKind{}, 0, ErrUnexpectedEOF
	}

	seenDot := false

	digits, length, err := takeWhile(data, func(r rune) bool {
		if unicode.IsDigit(r) {
			return true
		}

		if r == '.' && !seenDot {
			seenDot = true
			return true
		}

		return false
	})
	if err != nil {
		return TokenKind{}, 0, err
	}

	if seenDot {
		value, err := strconv.ParseFloat(string(digits), 64)
		if err != nil {
			return TokenKind{}, 0, err
		}

		return DecimalKind(value), length, nil
	}

	value, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return TokenKind{}, 0, err
	}

	return IntegerKind(value), length, nil
}

// tokenizeSingle owns the "which kind of token starts here" decision. It
// classifies the first rune of data and either routes to an atom tokenizer or
// returns the fixed one-byte symbol token. The caller must already have
// skipped whitespace and comments; data must be non-empty meaningful content.
func tokenizeSingle(data []byte) (TokenKind, int, error) {
	if len(data) == 0 {
		return TokenKind{}, 0, ErrUnexpectedEOF
	}

	next, _ := utf8.DecodeRune(data)

	switch {
	case unicode.IsDigit(next):
		kind, length, err := tokenizeNumber(data)
		if err != nil {
			return TokenKind{}, 0, fmt.Errorf("couldn't tokenize a number: %w", err)
		}

		return kind, length, nil

	case unicode.IsLetter(next) || next == '_':
		kind, length, err := tokenizeIdentifier(data)
		if err != nil {
			return TokenKind{}, 0, fmt.Errorf("couldn't tokenize an identifier: %w", err)
		}

		return kind, length, nil
	}

	var id Kind

	switch next {
	case '*':
		id = Asterisk
	case '@':
		id = At
	case '^':
		id = Caret
	case ')':
		id = CloseParen
	case ']':
		id = CloseSquare
	case ':':
		id = Colon
	case '.':
		id = Dot
	case '=':
		id = Equals
	case '-':
		id = Minus
	case '(':
		id = OpenParen
	case '[':
		id = OpenSquare
	case '+':
		id = Plus
	case ';':
		id = Semicolon
	case '/':
		id = Slash
	default:
		return TokenKind{}, 0, &UnknownCharacterError{Char: next}
	}

	return SymbolKind(id), 1, nil
}
