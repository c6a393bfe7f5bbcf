package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/btouchard/wpl/internal/compiler/index"
)

func cmdIndex(args []string) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	dbPath := fs.String("db", index.PathFromEnv(), "symbol index database (env "+index.EnvPath+")")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: wpl index [-db path] <files...>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	indexed, err := indexFiles(*dbPath, fs.Args())
	for _, file := range indexed {
		fmt.Printf("Indexed %s\n", file)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// indexFiles records the declarations of every file that parses. Files with
// errors keep whatever was indexed for them before.
func indexFiles(dbPath string, files []string) ([]string, error) {
	units, compileErr := compileAll(files)

	store, err := index.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	var indexed []string
	for _, file := range files {
		unit, ok := units[file]
		if !ok {
			continue
		}
		if err := store.Record(file, unit.Symbols); err != nil {
			return indexed, err
		}
		indexed = append(indexed, file)
	}
	return indexed, compileErr
}

func cmdLookup(args []string) {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	dbPath := fs.String("db", index.PathFromEnv(), "symbol index database (env "+index.EnvPath+")")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: wpl lookup [-db path] <name>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	found, err := lookup(os.Stdout, *dbPath, fs.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !found {
		_, _ = fmt.Fprintf(os.Stderr, "%s: not found\n", fs.Arg(0))
		os.Exit(1)
	}
}

func lookup(w io.Writer, dbPath, name string) (bool, error) {
	store, err := index.Open(dbPath)
	if err != nil {
		return false, err
	}
	defer store.Close()

	syms, err := store.Lookup(name)
	if err != nil {
		return false, fmt.Errorf("looking up %s: %w", name, err)
	}
	for _, sym := range syms {
		if _, err := fmt.Fprintln(w, sym); err != nil {
			return false, err
		}
	}
	return len(syms) > 0, nil
}
