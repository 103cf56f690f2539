// Package pascal orchestrates the frontend: it loads workspace files, drives
// the lexer over them and binds the raw byte offsets it emits to persistent
// spans in the code map.
package pascal

import (
	"errors"
	"io"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/gobwas/glob"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/pacer/pastel/internal/pascal/lexer"
	"github.com/pacer/pastel/internal/pascal/source"
)

// MaxProjectFileDepth bounds directory recursion when loading a workspace.
const MaxProjectFileDepth = 5

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Token is a classified lexical unit located by a code-map span, ready for a
// parser or for diagnostics.
type Token struct {
	Kind lexer.TokenKind
	Span source.Span
}

// TokenizeFile scans one registered file and binds every raw (start, end)
// offset pair to a span of that file. The result is all-or-nothing, matching
// the lexer's contract.
func TokenizeFile(file *source.File) ([]Token, error) {
	raw, err := lexer.Tokenize(file.Content())
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, Token{
			Kind: t.Kind,
			Span: file.Span(t.Start, t.End),
		})
	}

	return tokens, nil
}

// FileTokens is the outcome of tokenizing one workspace file.
type FileTokens struct {
	File   *source.File
	Tokens []Token
	Err    error
}

// TokenizeWorkspace registers every file with the code map and tokenizes them
// concurrently on a bounded goroutine pool. Tokenization of independent
// sources shares no state, so the only coordination needed is the result
// channel. Per-file failures land in the returned map; they do not abort the
// other files.
func TokenizeWorkspace(
	codeMap *source.CodeMap,
	workspaceFiles map[string][]byte,
) map[string]FileTokens {
	if len(workspaceFiles) == 0 {
		return make(map[string]FileTokens)
	}

	numWorkers := min(runtime.GOMAXPROCS(0), len(workspaceFiles))

	pool, err := ants.NewPool(numWorkers)
	if err != nil {
		fLogger.WithError(err).Error("unable to create tokenizer pool, falling back to serial scan")
		return tokenizeWorkspaceSerial(codeMap, workspaceFiles)
	}
	defer pool.Release()

	results := make(chan FileTokens, len(workspaceFiles))

	var wg sync.WaitGroup
	for name, content := range workspaceFiles {
		file := codeMap.AddFile(name, content)

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			tokens, err := TokenizeFile(file)
			results <- FileTokens{File: file, Tokens: tokens, Err: err}
		})
		if err != nil {
			// Pool refused the task (released or overloaded); run inline.
			wg.Done()
			tokens, scanErr := TokenizeFile(file)
			results <- FileTokens{File: file, Tokens: tokens, Err: scanErr}
		}
	}

	wg.Wait()
	close(results)

	tokenizedFiles := make(map[string]FileTokens, len(workspaceFiles))
	for result := range results {
		tokenizedFiles[result.File.Name()] = result
		fLogger.WithFields(logrus.Fields{
			"file":   result.File.Name(),
			"tokens": len(result.Tokens),
		}).Debug("tokenized workspace file")
	}

	return tokenizedFiles
}

func tokenizeWorkspaceSerial(
	codeMap *source.CodeMap,
	workspaceFiles map[string][]byte,
) map[string]FileTokens {
	tokenizedFiles := make(map[string]FileTokens, len(workspaceFiles))

	for name, content := range workspaceFiles {
		file := codeMap.AddFile(name, content)
		tokens, err := TokenizeFile(file)
		tokenizedFiles[name] = FileTokens{File: file, Tokens: tokens, Err: err}
	}

	return tokenizedFiles
}

// OpenProjectFiles recursively opens files from 'rootDir' whose base name
// matches the glob pattern. There is a depth limit for the recursion
// (current MaxProjectFileDepth = 5).
func OpenProjectFiles(rootDir string, matcher glob.Glob) map[string][]byte {
	return openProjectFilesSafely(rootDir, matcher, 0, MaxProjectFileDepth)
}

func openProjectFilesSafely(
	rootDir string,
	matcher glob.Glob,
	currentDepth, maxDepth int,
) map[string][]byte {
	if currentDepth > maxDepth {
		return nil
	}

	list, err := os.ReadDir(rootDir)
	if err != nil {
		fLogger.WithError(err).WithField("dir", rootDir).Warn("unable to read directory")
		return nil
	}

	fileNamesToContent := make(map[string][]byte)

	for _, entry := range list {
		fileName := filepath.Join(rootDir, entry.Name())

		if entry.IsDir() {
			subFiles := openProjectFilesSafely(
				fileName,
				matcher,
				currentDepth+1,
				maxDepth,
			)

			maps.Copy(fileNamesToContent, subFiles)
			continue
		}

		if !matcher.Match(entry.Name()) {
			continue
		}

		file, err := os.Open(fileName)
		if err != nil {
			fLogger.WithError(err).WithField("file", fileName).Warn("unable to open file")
			continue
		}

		fileContent, _ := io.ReadAll(file)
		file.Close()

		fileNamesToContent[fileName] = fileContent
	}

	return fileNamesToContent
}

// FormatError renders a tokenization failure for the terminal. Located lexer
// errors become caret snippets; anything else falls back to the plain message.
func FormatError(file *source.File, err error) string {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return file.Snippet(lexErr.Offset, lexErr.Err.Error())
	}

	return err.Error()
}
