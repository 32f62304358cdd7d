package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTagDBAddDrop(t *testing.T) {
	t.Parallel()

	var db TagDB
	if i := db.Add(); i != 0 {
		t.Fatalf("first Add returned %d, want 0", i)
	}
	db[0].Name = "Fast"
	db.Add()
	db[1].Name = "Slow"
	db.Add()
	db[2].Name = "Heavy"

	db.Drop(1)
	want := TagDB{{Name: "Fast"}, {Name: "Heavy"}}
	if diff := cmp.Diff(want, db); diff != "" {
		t.Errorf("after Drop(1) (-want +got):\n%s", diff)
	}

	db.Drop(-1)
	db.Drop(5)
	if len(db) != 2 {
		t.Errorf("out-of-range Drop changed length to %d", len(db))
	}
}

func TestTagDBSortIsStable(t *testing.T) {
	t.Parallel()

	db := TagDB{
		{Name: "B", Fluff: "b1"},
		{Name: "A", Fluff: "a1"},
		{Name: "B", Fluff: "b2"},
		{Name: "C"},
		{Name: "A", Fluff: "a2"},
	}
	db.Sort()

	want := TagDB{
		{Name: "A", Fluff: "a1"},
		{Name: "A", Fluff: "a2"},
		{Name: "B", Fluff: "b1"},
		{Name: "B", Fluff: "b2"},
		{Name: "C"},
	}
	if diff := cmp.Diff(want, db); diff != "" {
		t.Errorf("Sort (-want +got):\n%s", diff)
	}
}

func TestViewLastOccurrenceWins(t *testing.T) {
	t.Parallel()

	db := TagDB{{Name: "X"}, {Name: "Y", Fluff: "y"}, {Name: "X", Fluff: "second"}}
	v := db.View()

	got, ok := v.Resolve("X")
	if !ok {
		t.Fatal("expected X to resolve")
	}
	if got.Fluff != "second" {
		t.Errorf("Resolve(X).Fluff = %q, want %q", got.Fluff, "second")
	}
	if v.Len() != 2 {
		t.Errorf("Len() = %d, want 2", v.Len())
	}
	if v.Len() > len(db) {
		t.Errorf("Len() %d exceeds dictionary size %d", v.Len(), len(db))
	}

	// Every entry resolves to the last entry with its name.
	for i, tag := range db {
		last := i
		for j := i + 1; j < len(db); j++ {
			if db[j].Name == tag.Name {
				last = j
			}
		}
		if r, _ := v.Resolve(tag.Name); r != db[last] {
			t.Errorf("Resolve(%q) = %+v, want %+v", tag.Name, r, db[last])
		}
	}
}

func TestViewTagsFollowDictionaryOrder(t *testing.T) {
	t.Parallel()

	db := TagDB{{Name: "X"}, {Name: "B"}, {Name: "X", Fluff: "second"}, {Name: "A"}}
	v := db.View()

	var names []string
	for _, tag := range v.Tags() {
		names = append(names, tag.Name)
	}
	if diff := cmp.Diff([]string{"X", "B", "X", "A"}, names); diff != "" {
		t.Errorf("Tags() order (-want +got):\n%s", diff)
	}

	first, ok := v.First()
	if !ok || first != "X" {
		t.Errorf("First() = %q, %v; want X, true", first, ok)
	}
}

func TestViewIsACopy(t *testing.T) {
	t.Parallel()

	db := TagDB{{Name: "Fast"}}
	v := db.View()
	db[0].Name = "Quick"

	if !v.Has("Fast") {
		t.Error("view should keep the name it was built with")
	}
	if v.Has("Quick") {
		t.Error("view should not observe later dictionary edits")
	}
}

func TestEmptyView(t *testing.T) {
	t.Parallel()

	v := TagDB{}.View()
	if _, ok := v.First(); ok {
		t.Error("First() on empty view should report false")
	}
	if _, ok := v.Resolve(""); ok {
		t.Error("nothing resolves in an empty view")
	}
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
}
