// Package source maintains the code map: the registry that ties byte offsets
// produced by the lexer back to files, spans and line/column positions for
// diagnostics.
package source

import (
	"log"
	"sync"
)

// FileID identifies one registered file within a CodeMap.
type FileID int

// Span is a persistent handle on the half-open byte interval [Start, End)
// within one registered file. Offsets count bytes from the start of the file
// content, matching the offsets the lexer emits.
type Span struct {
	File  FileID
	Start int
	End   int
}

// Position is a 0-based line/column location inside a file. Columns count
// bytes within the line.
type Position struct {
	Line   int
	Column int
}

// File is one source unit registered with a CodeMap. Content is immutable
// after registration.
type File struct {
	id      FileID
	name    string
	content []byte
}

func (f *File) ID() FileID      { return f.id }
func (f *File) Name() string    { return f.name }
func (f *File) Content() []byte { return f.content }

// Span binds a byte range of this file into a persistent Span handle.
// The range must lie within the file content.
func (f *File) Span(start, end int) Span {
	if start > end || start < 0 || end > len(f.content) {
		log.Printf(
			"bad span for file %q: start = %d :: end = %d :: len = %d\n",
			f.name, start, end, len(f.content),
		)
		panic("span range out of bounds for file content")
	}

	return Span{File: f.id, Start: start, End: end}
}

// Slice returns the lexeme text the span covers.
func (f *File) Slice(sp Span) []byte {
	if sp.File != f.id {
		log.Printf("span for file %d sliced against file %d (%q)\n", sp.File, f.id, f.name)
		panic("span does not belong to this file")
	}

	return f.content[sp.Start:sp.End]
}

// PositionAt converts a byte offset into a line/column position by walking
// the content and counting newlines. Offsets past the end clamp to the last
// position.
func (f *File) PositionAt(offset int) Position {
	var line, column int

	for i := range f.content {
		if i == offset {
			break
		}

		if f.content[i] == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}

	return Position{Line: line, Column: column}
}

// CodeMap registers files and resolves spans back to their text. Registration
// is serialized; lookups on already-registered files are safe concurrently
// with each other.
type CodeMap struct {
	mu    sync.RWMutex
	files []*File
}

func NewCodeMap() *CodeMap {
	return &CodeMap{}
}

// AddFile registers a source unit and returns its handle.
func (m *CodeMap) AddFile(name string, content []byte) *File {
	m.mu.Lock()
	defer m.mu.Unlock()

	file := &File{
		id:      FileID(len(m.files)),
		name:    name,
		content: content,
	}
	m.files = append(m.files, file)

	return file
}

// File resolves a FileID. The boolean is false for an unknown id.
func (m *CodeMap) File(id FileID) (*File, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id < 0 || int(id) >= len(m.files) {
		return nil, false
	}

	return m.files[id], true
}

// Lookup recovers the lexeme a span points at. The boolean is false when the
// span's file is unknown or the range does not fit its content.
func (m *CodeMap) Lookup(sp Span) ([]byte, bool) {
	file, ok := m.File(sp.File)
	if !ok {
		return nil, false
	}

	if sp.Start > sp.End || sp.Start < 0 || sp.End > len(file.content) {
		return nil, false
	}

	return file.content[sp.Start:sp.End], true
}
