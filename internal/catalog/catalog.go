// Package catalog holds the editable game data: the tag vocabulary and the
// weapons and systems that reference it by name.
package catalog

import "github.com/bytedance/sonic"

// Catalog is the top-level document.
type Catalog struct {
	TagDB   TagDB    `json:"tag_db"`
	Weapons []Weapon `json:"weapons"`
	Systems []System `json:"systems"`
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		TagDB:   TagDB{},
		Weapons: []Weapon{},
		Systems: []System{},
	}
}

// Normalize replaces nil sequences with empty ones so that a catalog always
// serializes its collections as arrays.
func (c *Catalog) Normalize() {
	if c.TagDB == nil {
		c.TagDB = TagDB{}
	}
	if c.Weapons == nil {
		c.Weapons = []Weapon{}
	}
	if c.Systems == nil {
		c.Systems = []System{}
	}
	for i := range c.Weapons {
		if c.Weapons[i].Tags == nil {
			c.Weapons[i].Tags = TagRefs{}
		}
	}
	for i := range c.Systems {
		if c.Systems[i].Tags == nil {
			c.Systems[i].Tags = TagRefs{}
		}
	}
}

// AddTag appends a blank tag and returns its index.
func (c *Catalog) AddTag() int { return c.TagDB.Add() }

// DropTag removes the tag at i. References to it are left in place.
func (c *Catalog) DropTag(i int) { c.TagDB.Drop(i) }

// SortTags stably sorts the dictionary by name. References are untouched.
func (c *Catalog) SortTags() { c.TagDB.Sort() }

// Lookup builds the tag lookup view for the current dictionary.
func (c *Catalog) Lookup() View { return c.TagDB.View() }

// AddWeapon appends a default weapon and returns its index.
func (c *Catalog) AddWeapon() int {
	c.Weapons = append(c.Weapons, NewWeapon())
	return len(c.Weapons) - 1
}

// DropWeapon removes the weapon at i. Out-of-range indices are ignored.
func (c *Catalog) DropWeapon(i int) {
	c.Weapons = dropAt(c.Weapons, i)
}

// AddSystem appends a default system and returns its index.
func (c *Catalog) AddSystem() int {
	c.Systems = append(c.Systems, NewSystem())
	return len(c.Systems) - 1
}

// DropSystem removes the system at i. Out-of-range indices are ignored.
func (c *Catalog) DropSystem(i int) {
	c.Systems = dropAt(c.Systems, i)
}

// UnmarshalJSON decodes over an empty catalog so that missing collections
// come back empty rather than nil.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	type plain Catalog
	p := plain(*New())
	if err := sonic.ConfigStd.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Catalog(p)
	c.Normalize()
	return nil
}

func dropAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	return append(s[:i], s[i+1:]...)
}
