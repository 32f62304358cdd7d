package catalog

import "sort"

// TagDB is the ordered tag dictionary. Positions are what the editor anchors
// on, so order only changes through Drop and Sort. Duplicate names are kept.
type TagDB []Tag

// Add appends a blank tag and returns its index.
func (db *TagDB) Add() int {
	*db = append(*db, Tag{})
	return len(*db) - 1
}

// Drop removes the tag at i and compacts the dictionary. Out-of-range
// indices are ignored. References to the dropped name become dangling.
func (db *TagDB) Drop(i int) {
	if i < 0 || i >= len(*db) {
		return
	}
	*db = append((*db)[:i], (*db)[i+1:]...)
}

// Sort orders the dictionary by name. Equal names keep their relative order.
func (db TagDB) Sort() {
	sort.SliceStable(db, func(i, j int) bool { return db[i].Name < db[j].Name })
}

// View builds the lookup view for the current contents of db.
func (db TagDB) View() View {
	return newView(db)
}
