package lexer

// ----------
// Token Kind
// ----------

type Kind int

const (
	// Payload-carrying kinds.
	Integer Kind = iota
	Decimal
	Identifier
	// QuotedString is reserved. The scanner does not tokenize string
	// literals yet; the kind exists so the token vocabulary is complete.
	QuotedString

	// Punctuation and operator kinds, one per symbol.
	Asterisk    // *
	At          // @
	Caret       // ^
	CloseParen  // )
	CloseSquare // ]
	Colon       // :
	Dot         // .
	// End is the reserved program end marker; like QuotedString it is not
	// produced by the current scanner.
	End
	Equals     // =
	Minus      // -
	OpenParen  // (
	OpenSquare // [
	Plus       // +
	Semicolon  // ;
	Slash      // /
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	case Identifier:
		return "Identifier"
	case QuotedString:
		return "QuotedString"
	case Asterisk:
		return "Asterisk"
	case At:
		return "At"
	case Caret:
		return "Caret"
	case CloseParen:
		return "CloseParen"
	case CloseSquare:
		return "CloseSquare"
	case Colon:
		return "Colon"
	case Dot:
		return "Dot"
	case End:
		return "End"
	case Equals:
		return "Equals"
	case Minus:
		return "Minus"
	case OpenParen:
		return "OpenParen"
	case OpenSquare:
		return "OpenSquare"
	case Plus:
		return "Plus"
	case Semicolon:
		return "Semicolon"
	case Slash:
		return "Slash"
	}

	return "Unknown"
}
