// Command pastel tokenizes Pascal-like source files and reports lexical
// diagnostics with file, line and column information.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"github.com/pacer/pastel/internal/pascal"
	"github.com/pacer/pastel/internal/pascal/source"
)

// version is set by goreleaser at build time.
var version = "dev"

type CLI struct {
	Verbose bool             `short:"v" help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Print the version and exit."`

	Lex lexCommand `cmd:"" help:"Tokenize source files and print the token stream."`
}

type lexCommand struct {
	Paths []string `arg:"" name:"path" help:"Files or directories to tokenize." type:"path"`
	Match string   `help:"Glob pattern for files picked up from directories." default:"*.pas"`
	Dump  bool     `help:"Dump the token structures instead of the one-per-line listing."`
}

func (c *lexCommand) Run(logger *logrus.Logger) error {
	matcher, err := glob.Compile(c.Match)
	if err != nil {
		return fmt.Errorf("invalid --match pattern %q: %w", c.Match, err)
	}

	workspaceFiles := make(map[string][]byte)

	for _, path := range c.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("unable to stat %q: %w", path, err)
		}

		if info.IsDir() {
			files := pascal.OpenProjectFiles(path, matcher)
			for name, content := range files {
				workspaceFiles[name] = content
			}
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read %q: %w", path, err)
		}

		workspaceFiles[path] = content
	}

	if len(workspaceFiles) == 0 {
		logger.Warn("no files matched")
		return nil
	}

	codeMap := source.NewCodeMap()
	tokenizedFiles := pascal.TokenizeWorkspace(codeMap, workspaceFiles)

	fileNames := make([]string, 0, len(tokenizedFiles))
	for name := range tokenizedFiles {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	failures := 0

	for _, name := range fileNames {
		result := tokenizedFiles[name]

		if result.Err != nil {
			failures++
			fmt.Fprint(os.Stderr, pascal.FormatError(result.File, result.Err))
			continue
		}

		if c.Dump {
			spew.Dump(result.Tokens)
			continue
		}

		for _, token := range result.Tokens {
			fmt.Printf(
				"%s:%d..%d\t%s\n",
				result.File.Name(),
				token.Span.Start,
				token.Span.End,
				token.Kind,
			)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to tokenize", failures, len(tokenizedFiles))
	}

	return nil
}

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("pastel"),
		kong.Description("Frontend tooling for a Pascal-like language."),
		kong.Vars{"version": version},
	)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	pascal.SetLogger(logger)

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
