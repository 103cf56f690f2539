package source

import (
	"strings"
	"testing"
)

func TestCodeMap_AddFileAndLookup(t *testing.T) {
	codeMap := NewCodeMap()

	file := codeMap.AddFile("swap.pas", []byte("begin end."))

	span := file.Span(0, 5)
	lexeme, ok := codeMap.Lookup(span)
	if !ok {
		t.Fatal("Expected lookup of a registered span to succeed")
	}

	if string(lexeme) != "begin" {
		t.Errorf("Expected lexeme \"begin\", got %q", lexeme)
	}

	if string(file.Slice(span)) != "begin" {
		t.Errorf("Expected Slice to agree with Lookup, got %q", file.Slice(span))
	}
}

func TestCodeMap_DistinctFileIDs(t *testing.T) {
	codeMap := NewCodeMap()

	first := codeMap.AddFile("a.pas", []byte("aaa"))
	second := codeMap.AddFile("b.pas", []byte("bbb"))

	if first.ID() == second.ID() {
		t.Error("Expected distinct ids for distinct files")
	}

	lexeme, ok := codeMap.Lookup(second.Span(0, 3))
	if !ok || string(lexeme) != "bbb" {
		t.Errorf("Expected span of second file to resolve to \"bbb\", got %q (ok=%v)", lexeme, ok)
	}
}

func TestCodeMap_LookupRejectsBadSpans(t *testing.T) {
	codeMap := NewCodeMap()
	file := codeMap.AddFile("a.pas", []byte("short"))

	if _, ok := codeMap.Lookup(Span{File: 99, Start: 0, End: 1}); ok {
		t.Error("Expected lookup with unknown file id to fail")
	}

	if _, ok := codeMap.Lookup(Span{File: file.ID(), Start: 2, End: 99}); ok {
		t.Error("Expected lookup past end of content to fail")
	}
}

func TestFile_PositionAt(t *testing.T) {
	file := (&CodeMap{}).AddFile("pos.pas", []byte("ab\ncdef\ng"))

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{name: "start of file", offset: 0, want: Position{Line: 0, Column: 0}},
		{name: "middle of first line", offset: 1, want: Position{Line: 0, Column: 1}},
		{name: "start of second line", offset: 3, want: Position{Line: 1, Column: 0}},
		{name: "middle of second line", offset: 5, want: Position{Line: 1, Column: 2}},
		{name: "third line", offset: 8, want: Position{Line: 2, Column: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := file.PositionAt(tt.offset); got != tt.want {
				t.Errorf("Expected %+v at offset %d, got %+v", tt.want, tt.offset, got)
			}
		})
	}
}

func TestFile_Snippet(t *testing.T) {
	file := (&CodeMap{}).AddFile("snip.pas", []byte("begin\n  x ? y\nend."))

	snippet := file.Snippet(10, "unknown character '?'")

	if !strings.Contains(snippet, "snip.pas:2:5: unknown character '?'") {
		t.Errorf("Expected header with 1-based line and column, got:\n%s", snippet)
	}

	lines := strings.Split(snippet, "\n")

	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
			break
		}
	}

	if caretLine == "" {
		t.Fatalf("Expected a caret line in snippet:\n%s", snippet)
	}

	if !strings.HasSuffix(caretLine, "    ^") {
		t.Errorf("Expected caret under column 5, got %q", caretLine)
	}

	if !strings.Contains(snippet, "   1 | begin") || !strings.Contains(snippet, "   3 | end.") {
		t.Errorf("Expected one line of context on each side, got:\n%s", snippet)
	}
}
