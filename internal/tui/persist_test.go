package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/document"
	"github.com/papapumpkin/obedit/internal/store"
)

func sampleCatalog(tag string) *catalog.Catalog {
	c := catalog.New()
	c.TagDB = catalog.TagDB{{Name: tag, Fluff: "+1"}}
	w := catalog.NewWeapon()
	w.Tags = catalog.TagRefs{tag}
	c.Weapons = append(c.Weapons, w)
	return c
}

func newPersistence(t *testing.T) Persistence {
	t.Helper()
	dir := t.TempDir()
	st, err := store.OpenFile(filepath.Join(dir, "storage.toml"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	return Persistence{
		DocumentPath: filepath.Join(dir, "data.json"),
		Store:        st,
		Key:          "data",
	}
}

func putStore(t *testing.T, p Persistence, c *catalog.Catalog) {
	t.Helper()
	data, err := document.Save(c)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := p.Store.Set(context.Background(), p.Key, data); err != nil {
		t.Fatalf("Set: %v", err)
	}
}

func TestPersistenceLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("document wins", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)
		putStore(t, p, sampleCatalog("FromStore"))
		if err := document.WriteFile(p.DocumentPath, sampleCatalog("FromDoc")); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		if diff := cmp.Diff(sampleCatalog("FromDoc"), p.Load(ctx)); diff != "" {
			t.Errorf("catalog mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("store when document missing", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)
		putStore(t, p, sampleCatalog("FromStore"))

		if diff := cmp.Diff(sampleCatalog("FromStore"), p.Load(ctx)); diff != "" {
			t.Errorf("catalog mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("store when document corrupt", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)
		putStore(t, p, sampleCatalog("FromStore"))
		if err := os.WriteFile(p.DocumentPath, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(sampleCatalog("FromStore"), p.Load(ctx)); diff != "" {
			t.Errorf("catalog mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty when nothing saved", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)

		if diff := cmp.Diff(catalog.New(), p.Load(ctx)); diff != "" {
			t.Errorf("catalog mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty when store value corrupt", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)
		if err := p.Store.Set(ctx, p.Key, []byte(`{"weapons":[{"class":"Huge"}]}`)); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(catalog.New(), p.Load(ctx)); diff != "" {
			t.Errorf("catalog mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPersistenceSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes both destinations", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)
		c := sampleCatalog("Fast")

		if err := p.Save(ctx, c); err != nil {
			t.Fatalf("Save: %v", err)
		}

		fromDoc, err := document.ReadFile(p.DocumentPath)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if diff := cmp.Diff(c, fromDoc); diff != "" {
			t.Errorf("document mismatch (-want +got):\n%s", diff)
		}

		data, err := p.Store.Get(ctx, p.Key)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		want, _ := document.Save(c)
		if string(data) != string(want) {
			t.Errorf("store value = %s, want %s", data, want)
		}
	})

	t.Run("document failure still writes store", func(t *testing.T) {
		t.Parallel()
		p := newPersistence(t)
		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		p.DocumentPath = filepath.Join(blocker, "data.json")

		if err := p.Save(ctx, sampleCatalog("Fast")); err == nil {
			t.Fatal("expected error writing under a regular file")
		}
		if _, err := p.Store.Get(ctx, p.Key); err != nil {
			t.Errorf("store not written: %v", err)
		}
	})

	t.Run("no destinations", func(t *testing.T) {
		t.Parallel()
		if err := (Persistence{}).Save(ctx, catalog.New()); err != nil {
			t.Errorf("Save: %v", err)
		}
	})
}
