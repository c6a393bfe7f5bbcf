package main

import (
	"fmt"
	"os"
)

const usage = `Usage: wpl <command> [flags] [args...]

Commands:
  translate   translate .wpl files to C-like source
  tokens      print the tokens of a .wpl file
  index       record the declarations of .wpl files in the symbol index
  lookup      find a declared name in the symbol index

Run "wpl <command> -h" for command flags.
`

func main() {
	if len(os.Args) < 2 {
		_, _ = fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "translate":
		cmdTranslate(args)
	case "tokens":
		cmdTokens(args)
	case "index":
		cmdIndex(args)
	case "lookup":
		cmdLookup(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
}
