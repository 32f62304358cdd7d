package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownMember is returned when a persisted enumeration value names no
// member of its enumeration.
var ErrUnknownMember = errors.New("unknown enumeration member")

// WeaponClass is the size class of a weapon mount.
type WeaponClass string

const (
	WeaponClassSuperheavy WeaponClass = "Superheavy"
	WeaponClassPrimary    WeaponClass = "Primary"
	WeaponClassAuxiliary  WeaponClass = "Auxiliary"
)

// WeaponClasses lists every WeaponClass in declaration order.
var WeaponClasses = []WeaponClass{WeaponClassSuperheavy, WeaponClassPrimary, WeaponClassAuxiliary}

// DefaultWeaponClass is assigned to new weapons and to documents missing the field.
const DefaultWeaponClass = WeaponClassPrimary

// String returns the display name, which is also the persisted member name.
func (c WeaponClass) String() string { return string(c) }

// Valid reports whether c is a member of WeaponClass.
func (c WeaponClass) Valid() bool {
	for _, m := range WeaponClasses {
		if c == m {
			return true
		}
	}
	return false
}

// ParseWeaponClass is the inverse of WeaponClass.String.
func ParseWeaponClass(s string) (WeaponClass, error) {
	c := WeaponClass(s)
	if !c.Valid() {
		return "", fmt.Errorf("weapon class %q: %w", s, ErrUnknownMember)
	}
	return c, nil
}

// UnmarshalText rejects names outside the enumeration.
func (c *WeaponClass) UnmarshalText(text []byte) error {
	v, err := ParseWeaponClass(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// WeaponTargeting says whether a weapon hits one target or an area.
type WeaponTargeting string

const (
	TargetingSingleTarget WeaponTargeting = "SingleTarget"
	TargetingArea         WeaponTargeting = "Area"
)

// Targetings lists every WeaponTargeting in declaration order.
var Targetings = []WeaponTargeting{TargetingSingleTarget, TargetingArea}

// DefaultTargeting is assigned to new weapons and to documents missing the field.
const DefaultTargeting = TargetingSingleTarget

// String returns the display name, which is also the persisted member name.
func (t WeaponTargeting) String() string { return string(t) }

// Valid reports whether t is a member of WeaponTargeting.
func (t WeaponTargeting) Valid() bool {
	for _, m := range Targetings {
		if t == m {
			return true
		}
	}
	return false
}

// ParseTargeting is the inverse of WeaponTargeting.String.
func ParseTargeting(s string) (WeaponTargeting, error) {
	t := WeaponTargeting(s)
	if !t.Valid() {
		return "", fmt.Errorf("weapon targeting %q: %w", s, ErrUnknownMember)
	}
	return t, nil
}

// UnmarshalText rejects names outside the enumeration.
func (t *WeaponTargeting) UnmarshalText(text []byte) error {
	v, err := ParseTargeting(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
