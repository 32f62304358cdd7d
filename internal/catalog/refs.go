package catalog

// TagRefs is an entity's ordered list of tag references. Each entry is a tag
// name captured when it was assigned; it may no longer resolve.
type TagRefs []string

// Add appends a reference to the first tag of the dictionary behind v. With
// an empty dictionary there is nothing to point at and Add reports false.
func (r *TagRefs) Add(v View) bool {
	name, ok := v.First()
	if !ok {
		return false
	}
	*r = append(*r, name)
	return true
}

// Remove deletes the reference at i. Out-of-range indices are ignored.
func (r *TagRefs) Remove(i int) {
	if i < 0 || i >= len(*r) {
		return
	}
	*r = append((*r)[:i], (*r)[i+1:]...)
}

// Dangling returns the positions of references that do not resolve in v.
func (r TagRefs) Dangling(v View) []int {
	var out []int
	for i, ref := range r {
		if !v.Has(ref) {
			out = append(out, i)
		}
	}
	return out
}
