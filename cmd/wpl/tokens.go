package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/btouchard/wpl/internal/compiler"
	"github.com/btouchard/wpl/internal/compiler/errors"
)

func cmdTokens(args []string) {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: wpl tokens <input.wpl>\n")
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	if err := printTokens(os.Stdout, fs.Arg(0)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// printTokens writes one line per token. Tokens read before a lexical error
// are still printed.
func printTokens(w io.Writer, inputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	toks, lexErr := compiler.Tokenize(string(data))
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Pos, tok.Type, tok.Literal); err != nil {
			return err
		}
	}
	if lexErr != nil {
		errs := errors.NewErrorList()
		errs.AddFile(inputFile, lexErr)
		return errs
	}
	return nil
}
