package lexer

import (
	"errors"
	"fmt"
)

// The scanner's error vocabulary is closed: every failure is either
// ErrUnexpectedEOF, an *UnknownCharacterError, or a lower-level parse error
// (numeric overflow from strconv), and reaches the caller wrapped in a
// *LexError carrying the byte offset of the failed token attempt.

// ErrUnexpectedEOF reports that input ended where at least one more character
// was required.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// errNoMatch is the predicate scanner's "zero runes consumed" signal. Callers
// decide whether that is an error; the comment skipper, for one, treats it as
// "not a comment here".
var errNoMatch = errors.New("no characters matched the predicate")

// UnknownCharacterError reports a character the dispatcher has no
// classification rule for.
type UnknownCharacterError struct {
	Char rune
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("unknown character %q", e.Char)
}

// LexError locates a scanning failure. Offset is the absolute byte position,
// relative to the input given to Tokenize, at which the failed token attempt
// began. The underlying cause, with any contextual message chain, is in Err.
type LexError struct {
	Offset int
	Err    error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at byte %d: %v", e.Offset, e.Err)
}

func (e *LexError) Unwrap() error { return e.Err }
