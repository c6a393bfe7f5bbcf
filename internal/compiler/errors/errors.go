package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/btouchard/wpl/internal/compiler/token"
)

const (
	PhaseLexer  = "lexer"
	PhaseParser = "parser"
)

// Position represents a location in source code
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line == 0 {
		return p.File
	}
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// FromToken converts a token position into a diagnostic position.
func FromToken(pos token.Position) Position {
	return Position{Line: pos.Line, Column: pos.Column}
}

// CompileError represents a compilation error with source position
type CompileError struct {
	Pos     Position
	Message string
	Phase   string // "lexer", "parser"
}

func (e *CompileError) Error() string {
	if e.Phase == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Pos, e.Message)
}

// Lexical builds a lexer-phase error at pos.
func Lexical(pos token.Position, format string, args ...any) *CompileError {
	return &CompileError{Pos: FromToken(pos), Message: fmt.Sprintf(format, args...), Phase: PhaseLexer}
}

// Syntax builds a parser-phase error at pos.
func Syntax(pos token.Position, format string, args ...any) *CompileError {
	return &CompileError{Pos: FromToken(pos), Message: fmt.Sprintf(format, args...), Phase: PhaseParser}
}

// IsLexical reports whether err is, or wraps, a lexer-phase CompileError.
func IsLexical(err error) bool {
	return phaseOf(err) == PhaseLexer
}

// IsSyntax reports whether err is, or wraps, a parser-phase CompileError.
func IsSyntax(err error) bool {
	return phaseOf(err) == PhaseParser
}

func phaseOf(err error) string {
	var ce *CompileError
	if stderrors.As(err, &ce) {
		return ce.Phase
	}
	return ""
}

// ErrorList collects multiple compilation errors
type ErrorList struct {
	Errors []*CompileError
}

func NewErrorList() *ErrorList {
	return &ErrorList{}
}

func (el *ErrorList) Add(pos Position, phase, message string) {
	el.Errors = append(el.Errors, &CompileError{Pos: pos, Message: message, Phase: phase})
}

// AddFile records err against file. Errors that are not CompileErrors are
// kept with an empty phase and no line information.
func (el *ErrorList) AddFile(file string, err error) {
	var ce *CompileError
	if stderrors.As(err, &ce) {
		pos := ce.Pos
		pos.File = file
		el.Add(pos, ce.Phase, ce.Message)
		return
	}
	el.Errors = append(el.Errors, &CompileError{Pos: Position{File: file}, Message: err.Error()})
}

func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Err returns the list as an error, or nil when it is empty.
func (el *ErrorList) Err() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

func (el *ErrorList) Error() string {
	return el.String()
}

func (el *ErrorList) String() string {
	s := ""
	for _, e := range el.Errors {
		s += e.Error() + "\n"
	}
	return s
}
