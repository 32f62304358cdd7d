package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openBackends(t *testing.T) map[string]func(dir string) (Store, error) {
	t.Helper()
	return map[string]func(dir string) (Store, error){
		BackendTOML: func(dir string) (Store, error) {
			return Open(context.Background(), BackendTOML, filepath.Join(dir, "storage.toml"))
		},
		BackendSQLite: func(dir string) (Store, error) {
			return Open(context.Background(), BackendSQLite, filepath.Join(dir, "storage.db"))
		},
	}
}

func TestStoreGetSet(t *testing.T) {
	t.Parallel()

	for name, open := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			dir := t.TempDir()

			s, err := open(dir)
			if err != nil {
				t.Fatalf("open: %v", err)
			}

			if _, err := s.Get(ctx, "data"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get on empty store = %v, want ErrNotFound", err)
			}

			value := []byte(`{"tag_db":[{"name":"Fast","fluff":"line\n\"quoted\""}],"weapons":[],"systems":[]}`)
			if err := s.Set(ctx, "data", value); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, "data", value); err != nil {
				t.Fatalf("second Set: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			reopened, err := open(dir)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer reopened.Close()

			got, err := reopened.Get(ctx, "data")
			if err != nil {
				t.Fatalf("Get after reopen: %v", err)
			}
			if string(got) != string(value) {
				t.Errorf("Get = %s, want %s", got, value)
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "registry", filepath.Join(t.TempDir(), "x"))
	if err == nil || !strings.Contains(err.Error(), "registry") {
		t.Errorf("Open(registry) = %v, want unknown backend error", err)
	}
}

func TestOpenFileCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storage.toml")
	if err := os.WriteFile(path, []byte("data = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "obedit", "storage.toml")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := s.Set(context.Background(), "data", []byte("{}")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %s, want %s", s.Path(), path)
	}
}
