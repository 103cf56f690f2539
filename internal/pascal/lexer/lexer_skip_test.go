package lexer

import "testing"

func TestSkipWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty input", input: "", want: 0},
		{name: "no leading whitespace", input: "123", want: 0},
		{name: "mixed whitespace", input: " \t\n\r123", want: 4},
		{name: "only whitespace", input: "   ", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipWhitespace([]byte(tt.input)); got != tt.want {
				t.Errorf("Expected %d bytes skipped for %q, got %d", tt.want, tt.input, got)
			}
		})
	}
}

func TestSkipComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "line comment through newline",
			input: "// foo bar { baz }\n 1234",
			want:  19,
		},
		{
			name:  "curly block comment",
			input: "{ baz \n 1234} hello wor\nld",
			want:  13,
		},
		{
			name:  "paren star block comment",
			input: "(* Hello World *) asd",
			want:  17,
		},
		{
			name:  "not a comment",
			input: "hello // comment later",
			want:  0,
		},
		{
			name:  "whitespace is not a comment",
			input: "   { }",
			want:  0,
		},
		{
			name:  "lone open paren",
			input: "(x)",
			want:  0,
		},
		{
			name:  "unterminated line comment",
			input: "// runs to the end",
			want:  18,
		},
		{
			name:  "unterminated curly comment",
			input: "{ never closed",
			want:  14,
		},
		{
			name:  "unterminated paren star comment",
			input: "(* never closed",
			want:  15,
		},
		{
			name:  "curly closer is inert inside paren star",
			input: "(* } still open *) x",
			want:  18,
		},
		{
			name:  "openers do not nest",
			input: "{ outer { inner } trailing",
			want:  17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipComment([]byte(tt.input)); got != tt.want {
				t.Errorf("Expected %d bytes skipped for %q, got %d", tt.want, tt.input, got)
			}
		})
	}
}

func TestSkipWhitespaceAndComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "whitespace then comment then whitespace",
			input: "   (* *) 123 hello world",
			want:  9,
		},
		{
			name:  "interleaved forms",
			input: "   (* c *)   // c2\n   token",
			want:  22,
		},
		{
			name:  "nothing to skip",
			input: "token",
			want:  0,
		},
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := skipWhitespaceAndComments([]byte(tt.input))
			if got != tt.want {
				t.Errorf("Expected %d bytes skipped for %q, got %d", tt.want, tt.input, got)
			}

			// A second pass over the remainder must be a no-op.
			if again := skipWhitespaceAndComments([]byte(tt.input)[got:]); again != 0 {
				t.Errorf("Expected second pass to skip nothing, skipped %d", again)
			}
		})
	}
}
