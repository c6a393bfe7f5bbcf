package main

import (
	"fmt"
	"os"

	"github.com/btouchard/wpl/internal/compiler"
	"github.com/btouchard/wpl/internal/compiler/errors"
)

// compileFile reads a .wpl file and translates it.
func compileFile(inputFile string, opts ...compiler.Option) (*compiler.Unit, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return compiler.Compile(string(data), opts...)
}

// compileAll translates every file, collecting the diagnostics of all of
// them. Units are keyed by input path for the files that succeeded.
func compileAll(files []string, opts ...compiler.Option) (map[string]*compiler.Unit, error) {
	units := make(map[string]*compiler.Unit, len(files))
	errs := errors.NewErrorList()
	for _, file := range files {
		unit, err := compileFile(file, opts...)
		if err != nil {
			errs.AddFile(file, err)
			continue
		}
		units[file] = unit
	}
	return units, errs.Err()
}
