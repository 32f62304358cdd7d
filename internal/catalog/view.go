package catalog

import "iter"

// View is the read-only lookup projection of a TagDB. It is rebuilt once per
// frame and holds its own copy of the entries, so edits to the dictionary
// made after construction are not visible through it.
type View struct {
	tags   []Tag
	byName map[string]int
}

func newView(db TagDB) View {
	v := View{
		tags:   make([]Tag, len(db)),
		byName: make(map[string]int, len(db)),
	}
	copy(v.tags, db)
	// Later entries overwrite earlier ones with the same name.
	for i, t := range v.tags {
		v.byName[t.Name] = i
	}
	return v
}

// Resolve returns the tag a reference points at. When several entries share
// the name, the last one in dictionary order wins.
func (v View) Resolve(ref string) (Tag, bool) {
	i, ok := v.byName[ref]
	if !ok {
		return Tag{}, false
	}
	return v.tags[i], true
}

// Has reports whether ref resolves.
func (v View) Has(ref string) bool {
	_, ok := v.byName[ref]
	return ok
}

// Len is the number of distinct names, never more than the dictionary size.
func (v View) Len() int { return len(v.byName) }

// Tags yields every dictionary entry in dictionary order, duplicates included.
// Pickers iterate this rather than the map so their order is stable.
func (v View) Tags() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, t := range v.tags {
			if !yield(i, t) {
				return
			}
		}
	}
}

// First returns the name of the first dictionary entry.
func (v View) First() (string, bool) {
	if len(v.tags) == 0 {
		return "", false
	}
	return v.tags[0].Name, true
}
