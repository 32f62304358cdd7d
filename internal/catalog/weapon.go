package catalog

import "github.com/bytedance/sonic"

// Weapon is a catalog weapon profile. RangeMin and RangeMax are edited
// independently; an inverted pair is allowed.
type Weapon struct {
	Name      string          `json:"name"`
	Fluff     string          `json:"fluff"`
	Cost      int             `json:"cost"`
	Class     WeaponClass     `json:"class"`
	Targeting WeaponTargeting `json:"targeting"`
	Tags      TagRefs         `json:"tags"`
	RangeMin  int             `json:"range_min"`
	RangeMax  int             `json:"range_max"`
	Damage    string          `json:"damage"`
	Rules     string          `json:"rules"`
}

// NewWeapon returns a weapon with every field at its default.
func NewWeapon() Weapon {
	return Weapon{
		Class:     DefaultWeaponClass,
		Targeting: DefaultTargeting,
		Tags:      TagRefs{},
	}
}

// UnmarshalJSON decodes over a default weapon so that fields missing from
// the document keep their defaults.
func (w *Weapon) UnmarshalJSON(data []byte) error {
	type plain Weapon
	p := plain(NewWeapon())
	if err := sonic.ConfigStd.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Tags == nil {
		p.Tags = TagRefs{}
	}
	*w = Weapon(p)
	return nil
}
