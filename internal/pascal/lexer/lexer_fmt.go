package lexer

import (
	"fmt"
	"strings"
)

func (k TokenKind) String() string {
	switch k.ID {
	case Integer:
		return fmt.Sprintf("Integer(%d)", k.Int)
	case Decimal:
		return fmt.Sprintf("Decimal(%v)", k.Real)
	case Identifier:
		return fmt.Sprintf("Identifier(%q)", k.Text)
	case QuotedString:
		return fmt.Sprintf("QuotedString(%q)", k.Text)
	}

	return k.ID.String()
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d..%d", t.Kind, t.Start, t.End)
}

// PrettyFormater converts an array of Stringer elements to a formatted string.
func PrettyFormater[T fmt.Stringer](arr []T) string {
	if len(arr) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")

	for index, el := range arr {
		if index > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(el.String())
	}

	sb.WriteString("]")

	return sb.String()
}

// Print outputs tokens to stdout, one formatted list per call.
func Print(tokens ...Token) {
	fmt.Println(PrettyFormater(tokens))
}
