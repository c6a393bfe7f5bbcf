//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/btouchard/wpl/internal/compiler"
)

func main() {
	js.Global().Set("translateWPL", js.FuncOf(translateWPLWrapper))

	// Keep the program alive
	select {}
}

// translateWPLWrapper wraps the translation logic with panic recovery
func translateWPLWrapper(this js.Value, args []js.Value) (result interface{}) {
	defer func() {
		if r := recover(); r != nil {
			result = js.ValueOf(map[string]interface{}{
				"code":   "",
				"errors": []interface{}{fmt.Sprintf("panic: %v", r)},
			})
		}
	}()

	if len(args) != 1 {
		return js.ValueOf(map[string]interface{}{
			"code":   "",
			"errors": []interface{}{"expected 1 argument (source code)"},
		})
	}

	code, errors := translateWPL(args[0].String())

	jsErrors := make([]interface{}, len(errors))
	for i, err := range errors {
		jsErrors[i] = err
	}
	return js.ValueOf(map[string]interface{}{
		"code":   code,
		"errors": jsErrors,
	})
}

// translateWPL translates a whole program and returns the C-like code and
// any diagnostics.
func translateWPL(source string) (string, []string) {
	code, err := compiler.TranslateProgram(source)
	if err != nil {
		return "", []string{err.Error()}
	}
	return code, nil
}
