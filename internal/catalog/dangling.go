package catalog

// EntityKind names the kind of entity that owns a tag reference.
type EntityKind string

const (
	KindWeapon EntityKind = "Weapon"
	KindSystem EntityKind = "System"
)

// DanglingRef locates one tag reference that no longer resolves.
type DanglingRef struct {
	Kind       EntityKind
	Entity     int
	EntityName string
	Ref        int
	Name       string
}

// Dangling lists every unresolved reference in catalog order: weapons first,
// then systems, each in reference order.
func (c *Catalog) Dangling() []DanglingRef {
	v := c.Lookup()
	var out []DanglingRef
	for i, w := range c.Weapons {
		for _, j := range w.Tags.Dangling(v) {
			out = append(out, DanglingRef{Kind: KindWeapon, Entity: i, EntityName: w.Name, Ref: j, Name: w.Tags[j]})
		}
	}
	for i, s := range c.Systems {
		for _, j := range s.Tags.Dangling(v) {
			out = append(out, DanglingRef{Kind: KindSystem, Entity: i, EntityName: s.Name, Ref: j, Name: s.Tags[j]})
		}
	}
	return out
}
