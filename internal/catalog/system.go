package catalog

import "github.com/bytedance/sonic"

// System is a ship system. Limited is nil for an unlimited system, otherwise
// it points at the use count.
type System struct {
	Name    string  `json:"name"`
	Fluff   string  `json:"fluff"`
	Cost    int     `json:"cost"`
	Limited *int    `json:"limited"`
	Tags    TagRefs `json:"tags"`
	Rules   string  `json:"rules"`
}

// NewSystem returns an unlimited system with every field at its default.
func NewSystem() System {
	return System{Tags: TagRefs{}}
}

// IsLimited reports whether the system carries a use count.
func (s System) IsLimited() bool { return s.Limited != nil }

// ToggleLimited flips between unlimited and limited. Becoming limited always
// starts the count at LimitMin; becoming unlimited discards the count.
func (s *System) ToggleLimited() {
	if s.Limited != nil {
		s.Limited = nil
		return
	}
	n := LimitMin
	s.Limited = &n
}

// UnmarshalJSON decodes over a default system so that fields missing from
// the document keep their defaults.
func (s *System) UnmarshalJSON(data []byte) error {
	type plain System
	p := plain(NewSystem())
	if err := sonic.ConfigStd.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Tags == nil {
		p.Tags = TagRefs{}
	}
	*s = System(p)
	return nil
}
