package lexer

import (
	"bytes"
	"unicode"
)

// commentForms lists the three comment delimiters, checked in order against
// the start of the remaining input. Closers are matched as literal substrings:
// comments do not nest, and one form's delimiters are inert inside another.
var commentForms = [...]struct {
	opener string
	closer string
}{
	{"//", "\n"},
	{"{", "}"},
	{"(*", "*)"},
}

// skipWhitespace returns the byte length of the leading run of Unicode
// whitespace. Zero is a valid result, not an error.
func skipWhitespace(data []byte) int {
	_, length, err := takeWhile(data, unicode.IsSpace)
	if err != nil {
		return 0
	}

	return length
}

// skipComment recognizes one comment at the start of data and returns the
// number of bytes from the opener through the matching closer, inclusive.
// When no form opens here it returns 0. A comment whose closer never appears
// consumes the rest of the input; unterminated comments are not an error at
// this layer.
func skipComment(data []byte) int {
	for _, form := range commentForms {
		if !bytes.HasPrefix(data, []byte(form.opener)) {
			continue
		}

		rest := data[len(form.opener):]

		index := bytes.Index(rest, []byte(form.closer))
		if index < 0 {
			return len(data)
		}

		return len(form.opener) + index + len(form.closer)
	}

	return 0
}

// skipWhitespaceAndComments alternates the two skippers until one full pass
// consumes nothing more, so arbitrarily interleaved whitespace and comments
// are swallowed in one call. Running it again on its own output is a no-op.
func skipWhitespaceAndComments(data []byte) int {
	total := 0

	for {
		whitespace := skipWhitespace(data[total:])
		total += whitespace

		comment := skipComment(data[total:])
		total += comment

		if whitespace+comment == 0 {
			return total
		}
	}
}
