package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btouchard/wpl/internal/compiler"
)

func cmdTranslate(args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	output := fs.String("o", "", "write all translations to this file (default: one .c file per input)")
	strict := fs.Bool("strict", false, "reject undeclared identifiers")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: wpl translate [-o output.c] [-strict] <files...>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	var opts []compiler.Option
	if *strict {
		opts = append(opts, compiler.WithStrictIdentifiers())
	}

	written, err := translateFiles(fs.Args(), *output, opts...)
	for _, path := range written {
		fmt.Printf("Generated %s successfully\n", path)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// translateFiles writes the translation of each input and returns the paths
// written. Nothing is written to a combined output unless every input
// translated cleanly.
func translateFiles(files []string, output string, opts ...compiler.Option) ([]string, error) {
	units, compileErr := compileAll(files, opts...)

	if output != "" {
		if compileErr != nil {
			return nil, compileErr
		}
		parts := make([]string, 0, len(files))
		for _, file := range files {
			parts = append(parts, units[file].Code)
		}
		if err := writeOutput(output, strings.Join(parts, "\n")+"\n"); err != nil {
			return nil, err
		}
		return []string{output}, nil
	}

	var written []string
	for _, file := range files {
		unit, ok := units[file]
		if !ok {
			continue
		}
		path := outputPath(file)
		if err := writeOutput(path, unit.Code+"\n"); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, compileErr
}

// outputPath swaps the input extension for .c
func outputPath(inputFile string) string {
	return strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + ".c"
}

func writeOutput(path, code string) error {
	// Create parent directories if needed
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
