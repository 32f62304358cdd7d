package check

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/document"
)

func writeDoc(t *testing.T, path string, refs ...string) {
	t.Helper()
	c := catalog.New()
	c.TagDB = catalog.TagDB{{Name: "Fast"}}
	w := catalog.NewWeapon()
	w.Name = "Lance"
	w.Tags = catalog.TagRefs(refs)
	c.Weapons = append(c.Weapons, w)
	if err := document.WriteFile(path, c); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(t *testing.T, path string)
		wantRefs  int
		wantErr   error
		wantLines []string
	}{
		{
			name:      "clean",
			setup:     func(t *testing.T, path string) { writeDoc(t, path, "Fast") },
			wantLines: []string{"no dangling references"},
		},
		{
			name:     "dangling",
			setup:    func(t *testing.T, path string) { writeDoc(t, path, "Fast", "Gone", "Slow") },
			wantRefs: 2,
			wantErr:  ErrDangling,
			wantLines: []string{
				`Weapon 0 "Lance" tag 1: "Gone"`,
				`Weapon 0 "Lance" tag 2: "Slow"`,
				"2 dangling references",
			},
		},
		{
			name:      "missing",
			setup:     func(*testing.T, string) {},
			wantLines: []string{"no document"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "data.json")
			tt.setup(t, path)

			r := Run(path)
			if len(r.Refs) != tt.wantRefs {
				t.Errorf("len(Refs) = %d, want %d", len(r.Refs), tt.wantRefs)
			}
			if err := r.Err(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Err() = %v, want %v", err, tt.wantErr)
			}

			var b strings.Builder
			if err := r.Write(&b); err != nil {
				t.Fatalf("Write: %v", err)
			}
			for _, want := range tt.wantLines {
				if !strings.Contains(b.String(), want) {
					t.Errorf("report missing %q:\n%s", want, b.String())
				}
			}
		})
	}
}

func TestRunCorruptDocument(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"weapons":[{"targeting":"Everywhere"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Run(path)
	if r.LoadErr == nil {
		t.Fatal("expected a load error")
	}
	if err := r.Err(); err == nil || errors.Is(err, ErrDangling) {
		t.Errorf("Err() = %v, want the load error", err)
	}
}
