package index

import (
	"path/filepath"
	"testing"

	"github.com/btouchard/wpl/internal/compiler/scope"
	"github.com/btouchard/wpl/internal/compiler/token"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func decl(name, typ string, kind scope.Kind, line, col int) scope.Declaration {
	return scope.Declaration{
		Name:  name,
		Type:  typ,
		Kind:  kind,
		Depth: 1,
		Pos:   token.Position{Line: line, Column: col},
	}
}

func TestRecordAndLookup(t *testing.T) {
	store := openStore(t)

	err := store.Record("b.wpl", []scope.Declaration{
		decl("count", "int", scope.KindVar, 3, 5),
	})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	err = store.Record("a.wpl", []scope.Declaration{
		decl("count", "float", scope.KindParam, 7, 2),
		decl("count", "int", scope.KindVar, 2, 9),
		decl("main", "void", scope.KindFunc, 1, 10),
	})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	syms, err := store.Lookup("count")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if len(syms) != 3 {
		t.Fatalf("expected 3 symbols, got %d", len(syms))
	}

	expected := []string{
		"a.wpl:2:9: var int count",
		"a.wpl:7:2: param float count",
		"b.wpl:3:5: var int count",
	}
	for i, want := range expected {
		if got := syms[i].String(); got != want {
			t.Errorf("symbol %d = %q, want %q", i, got, want)
		}
	}

	none, err := store.Lookup("missing")
	if err != nil || len(none) != 0 {
		t.Errorf("Lookup(missing) = %v, %v", none, err)
	}
}

func TestRecordReplacesFile(t *testing.T) {
	store := openStore(t)

	if err := store.Record("a.wpl", []scope.Declaration{decl("old", "int", scope.KindVar, 1, 1)}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := store.Record("a.wpl", []scope.Declaration{decl("fresh", "int", scope.KindVar, 1, 1)}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if syms, _ := store.Lookup("old"); len(syms) != 0 {
		t.Errorf("old symbols should be replaced, got %d", len(syms))
	}
	if syms, _ := store.Lookup("fresh"); len(syms) != 1 {
		t.Errorf("expected fresh symbol, got %d", len(syms))
	}

	if err := store.Record("a.wpl", nil); err != nil {
		t.Fatalf("Record(nil) error: %v", err)
	}
	files, err := store.Files()
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestFiles(t *testing.T) {
	store := openStore(t)

	for _, f := range []string{"z.wpl", "a.wpl", "m.wpl"} {
		if err := store.Record(f, []scope.Declaration{
			decl("x", "int", scope.KindVar, 1, 1),
			decl("y", "int", scope.KindVar, 2, 1),
		}); err != nil {
			t.Fatalf("Record(%s) error: %v", f, err)
		}
	}

	files, err := store.Files()
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	expected := []string{"a.wpl", "m.wpl", "z.wpl"}
	if len(files) != len(expected) {
		t.Fatalf("Files() = %v, want %v", files, expected)
	}
	for i := range expected {
		if files[i] != expected[i] {
			t.Errorf("Files()[%d] = %q, want %q", i, files[i], expected[i])
		}
	}
}

func TestRecordRollsBackInvalidSymbols(t *testing.T) {
	store := openStore(t)

	if err := store.Record("a.wpl", []scope.Declaration{decl("keep", "int", scope.KindVar, 1, 1)}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	err := store.Record("a.wpl", []scope.Declaration{
		decl("ok", "int", scope.KindVar, 1, 1),
		decl("", "int", scope.KindVar, 2, 1),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	if syms, _ := store.Lookup("keep"); len(syms) != 1 {
		t.Errorf("failed Record should leave previous symbols, got %d", len(syms))
	}
}

func TestSymbolValidate(t *testing.T) {
	tests := []struct {
		name    string
		sym     Symbol
		wantErr bool
	}{
		{"valid", Symbol{Name: "x", Kind: "var", Line: 1, Column: 1}, false},
		{"empty name", Symbol{Kind: "var", Line: 1, Column: 1}, true},
		{"unknown kind", Symbol{Name: "x", Kind: "type", Line: 1, Column: 1}, true},
		{"no position", Symbol{Name: "x", Kind: "func"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sym.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "")
	if got := PathFromEnv(); got != DefaultPath {
		t.Errorf("PathFromEnv() = %q, want %q", got, DefaultPath)
	}

	t.Setenv(EnvPath, "/tmp/custom.db")
	if got := PathFromEnv(); got != "/tmp/custom.db" {
		t.Errorf("PathFromEnv() = %q, want /tmp/custom.db", got)
	}
}
