package editor

import (
	"github.com/papapumpkin/obedit/internal/gui"
)

var _ gui.UI = (*fakeUI)(nil)

// fakeUI records what a frame draws and answers interactions scripted by
// the test. Every container draws its body; combo boxes draw their menu only
// when listed in open.
type fakeUI struct {
	press   map[string]int  // label -> occurrence to click this frame
	sliders map[string]int  // label -> value to set
	open    map[gui.ID]bool // combo boxes whose menus are drawn

	seen     map[string]int
	labels   []string
	buttons  []string
	combos   []gui.ID
	selected map[gui.ID]string
	sections []string
}

func newFake() *fakeUI {
	return &fakeUI{
		press:   map[string]int{},
		sliders: map[string]int{},
		open:    map[gui.ID]bool{},
	}
}

// reset clears per-frame records and scripted interactions except open menus.
func (f *fakeUI) reset() {
	f.press = map[string]int{}
	f.sliders = map[string]int{}
	f.seen = map[string]int{}
	f.labels = nil
	f.buttons = nil
	f.combos = nil
	f.selected = map[gui.ID]string{}
	f.sections = nil
}

func (f *fakeUI) clicked(label string) bool {
	if f.seen == nil {
		f.seen = map[string]int{}
	}
	n := f.seen[label]
	f.seen[label]++
	want, ok := f.press[label]
	return ok && want == n
}

func (f *fakeUI) Heading(text string) { f.labels = append(f.labels, text) }
func (f *fakeUI) Label(text string)   { f.labels = append(f.labels, text) }
func (f *fakeUI) Small(text string)   { f.labels = append(f.labels, text) }
func (f *fakeUI) Separator()          {}

func (f *fakeUI) TextEdit(*string) bool          { return false }
func (f *fakeUI) TextEditMultiline(*string) bool { return false }

func (f *fakeUI) SliderInt(value *int, lo, hi int, label string) bool {
	v, ok := f.sliders[label]
	if !ok {
		v = *value
	}
	v = min(max(v, lo), hi)
	changed := v != *value
	*value = v
	return changed
}

func (f *fakeUI) Button(label string) bool {
	f.buttons = append(f.buttons, label)
	return f.clicked(label)
}

func (f *fakeUI) Radio(label string, _ bool) bool {
	return f.clicked(label)
}

func (f *fakeUI) ComboBox(id gui.ID, selected string, body func(gui.UI)) {
	f.combos = append(f.combos, id)
	if f.selected == nil {
		f.selected = map[gui.ID]string{}
	}
	f.selected[id] = selected
	if f.open[id] {
		body(f)
	}
}

func (f *fakeUI) Horizontal(body func(gui.UI)) { body(f) }
func (f *fakeUI) Vertical(body func(gui.UI))   { body(f) }
func (f *fakeUI) Group(body func(gui.UI))      { body(f) }

func (f *fakeUI) Collapsing(title string, body func(gui.UI)) {
	f.sections = append(f.sections, title)
	body(f)
}

func (f *fakeUI) hasLabel(text string) bool {
	for _, l := range f.labels {
		if l == text {
			return true
		}
	}
	return false
}

func (f *fakeUI) count(button string) int {
	n := 0
	for _, b := range f.buttons {
		if b == button {
			n++
		}
	}
	return n
}
