package gui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ UI = (*Term)(nil)

// DefaultWidth is assumed until the host reports the terminal size.
const DefaultWidth = 80

const (
	fieldWidth     = 40
	maxSliderCells = 20
)

// Term draws UI frames as terminal text. Focus moves between interactive
// widgets in drawing order; a key event is delivered to the focused widget
// only. Widgets are identified for focus by their ordinal within the frame.
type Term struct {
	Keys  KeyMap
	Width int

	focus    int
	open     map[ID]bool
	expanded map[ID]bool

	// Per-frame state.
	event  *tea.KeyMsg
	count  int
	clicks int
	stack  []*box
}

type box struct {
	horizontal bool
	blocks     []string
}

// NewTerm returns a backend with nothing focused beyond the first widget
// and every section collapsed.
func NewTerm() *Term {
	return &Term{
		Keys:     DefaultKeyMap(),
		Width:    DefaultWidth,
		open:     make(map[ID]bool),
		expanded: make(map[ID]bool),
	}
}

// Focus returns the ordinal of the focused widget.
func (t *Term) Focus() int { return t.focus }

// SetFocus moves focus to the widget with ordinal n. It is clamped at the
// end of the next frame.
func (t *Term) SetFocus(n int) { t.focus = max(n, 0) }

// Expand opens the collapsing section with the given title.
func (t *Term) Expand(title string) { t.expanded[sectionID(title)] = true }

// Expanded reports whether the section with the given title is open.
func (t *Term) Expanded(title string) bool { return t.expanded[sectionID(title)] }

// IsOpen reports whether the combo box with the given id shows its menu.
func (t *Term) IsOpen(id ID) bool { return t.open[id] }

// Frame runs one frame. ev is the key pressed since the last frame, or nil.
// Focus navigation keys are handled here and never reach a widget.
func (t *Term) Frame(ev *tea.KeyMsg, draw func(UI)) string {
	t.begin(ev)
	draw(t)
	return t.end()
}

func (t *Term) begin(ev *tea.KeyMsg) {
	t.event = ev
	t.count = 0
	t.clicks = 0
	t.stack = []*box{{}}
	if ev == nil {
		return
	}
	switch {
	case key.Matches(*ev, t.Keys.Next):
		t.focus++
		t.event = nil
	case key.Matches(*ev, t.Keys.Prev):
		t.focus = max(t.focus-1, 0)
		t.event = nil
	}
}

func (t *Term) end() string {
	root := t.stack[0]
	t.stack = nil
	t.event = nil
	switch {
	case t.count == 0:
		t.focus = 0
	case t.focus >= t.count:
		t.focus = t.count - 1
	}
	return lipgloss.JoinVertical(lipgloss.Left, root.blocks...)
}

// next allocates the next focus ordinal and reports whether it is focused.
func (t *Term) next() bool {
	focused := t.count == t.focus
	t.count++
	return focused
}

// take consumes the pending event if it matches b.
func (t *Term) take(b key.Binding) bool {
	if t.event == nil || !key.Matches(*t.event, b) {
		return false
	}
	t.event = nil
	return true
}

func (t *Term) add(block string) {
	top := t.stack[len(t.stack)-1]
	top.blocks = append(top.blocks, block)
}

// collect draws body into a fresh container and returns its layout.
func (t *Term) collect(horizontal bool, body func(UI)) string {
	b := &box{horizontal: horizontal}
	t.stack = append(t.stack, b)
	body(t)
	t.stack = t.stack[:len(t.stack)-1]

	if len(b.blocks) == 0 {
		return ""
	}
	if !horizontal {
		return lipgloss.JoinVertical(lipgloss.Left, b.blocks...)
	}
	parts := make([]string, 0, 2*len(b.blocks))
	for i, block := range b.blocks {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (t *Term) mark(s string, focused bool) string {
	if focused {
		return styleIndicator.Render(FocusIndicator) + styleFocused.Render(s)
	}
	return " " + s
}

// Heading draws a section title.
func (t *Term) Heading(text string) { t.add(styleHeading.Render(text)) }

// Label draws plain text.
func (t *Term) Label(text string) { t.add(styleLabel.Render(text)) }

// Small draws de-emphasized text.
func (t *Term) Small(text string) { t.add(styleSmall.Render(text)) }

// Separator draws a horizontal rule.
func (t *Term) Separator() {
	t.add(styleSeparator.Render(strings.Repeat("─", max(t.Width-4, 10))))
}

// TextEdit edits a single line; typed runes append and backspace deletes.
func (t *Term) TextEdit(value *string) bool {
	focused := t.next()
	changed := focused && t.edit(value, false)

	text := *value
	if focused {
		text += "_"
	}
	t.add(t.mark("["+styleValue.Render(text)+"]", focused))
	return changed
}

// TextEditMultiline edits free text; enter inserts a newline.
func (t *Term) TextEditMultiline(value *string) bool {
	focused := t.next()
	changed := focused && t.edit(value, true)

	text := *value
	if focused {
		text += "_"
	}
	style := styleMultiline.Width(fieldWidth)
	if focused {
		style = style.BorderForeground(colorPrimary)
	}
	t.add(t.mark(style.Render(styleValue.Render(text)), focused))
	return changed
}

func (t *Term) edit(value *string, multiline bool) bool {
	if t.event == nil {
		return false
	}
	ev := *t.event
	switch {
	case multiline && key.Matches(ev, t.Keys.Newline):
		*value += "\n"
	case key.Matches(ev, t.Keys.Backspace):
		if *value != "" {
			_, size := utf8.DecodeLastRuneInString(*value)
			*value = (*value)[:len(*value)-size]
		}
	case ev.Type == tea.KeyRunes:
		*value += string(ev.Runes)
	case ev.Type == tea.KeySpace:
		*value += " "
	default:
		return false
	}
	t.event = nil
	return true
}

// SliderInt edits an integer with the left and right keys.
func (t *Term) SliderInt(value *int, lo, hi int, label string) bool {
	changed := false
	if c := max(lo, min(*value, hi)); c != *value {
		*value = c
		changed = true
	}

	focused := t.next()
	if focused {
		switch {
		case t.take(t.Keys.Increase):
			if *value < hi {
				*value++
				changed = true
			}
		case t.take(t.Keys.Decrease):
			if *value > lo {
				*value--
				changed = true
			}
		}
	}

	s := t.mark(renderSlider(*value, lo, hi), focused)
	if label != "" {
		s += " " + styleLabel.Render(label)
	}
	t.add(s)
	return changed
}

func renderSlider(v, lo, hi int) string {
	span := hi - lo
	cells := min(span, maxSliderCells)
	filled := 0
	if span > 0 {
		filled = (v - lo) * cells / span
	}
	return "◀" + strings.Repeat("■", filled) + strings.Repeat("□", cells-filled) + "▶ " +
		styleValue.Render(strconv.Itoa(v))
}

// Button draws a clickable label; enter or space clicks it.
func (t *Term) Button(label string) bool {
	focused := t.next()
	clicked := focused && t.take(t.Keys.Activate)
	if clicked {
		t.clicks++
	}
	t.add(t.mark("["+label+"]", focused))
	return clicked
}

// Radio draws one option of a choice.
func (t *Term) Radio(label string, selected bool) bool {
	focused := t.next()
	clicked := focused && t.take(t.Keys.Activate)
	if clicked {
		t.clicks++
	}
	dot := "( )"
	if selected {
		dot = "(•)"
	}
	t.add(t.mark(dot+" "+label, focused))
	return clicked
}

// ComboBox draws the current selection; activating it toggles the menu.
func (t *Term) ComboBox(id ID, selected string, body func(UI)) {
	focused := t.next()
	if focused && t.take(t.Keys.Activate) {
		t.open[id] = !t.open[id]
	}

	arrow := "▾"
	if t.open[id] {
		arrow = "▴"
	}
	header := t.mark(styleValue.Render(selected)+" "+arrow, focused)
	if !t.open[id] {
		t.add(header)
		return
	}

	before := t.clicks
	menu := t.collect(false, body)
	if t.clicks > before {
		delete(t.open, id)
	}
	t.add(lipgloss.JoinVertical(lipgloss.Left, header, styleMenu.Render(menu)))
}

// Horizontal lays body out on one row.
func (t *Term) Horizontal(body func(UI)) { t.add(t.collect(true, body)) }

// Vertical stacks body top to bottom.
func (t *Term) Vertical(body func(UI)) { t.add(t.collect(false, body)) }

// Group draws body inside a border.
func (t *Term) Group(body func(UI)) { t.add(styleGroup.Render(t.collect(false, body))) }

// Collapsing draws a focusable header; activating it shows or hides body.
func (t *Term) Collapsing(title string, body func(UI)) {
	id := sectionID(title)
	focused := t.next()
	if focused && t.take(t.Keys.Activate) {
		t.expanded[id] = !t.expanded[id]
	}

	arrow := "▸"
	if t.expanded[id] {
		arrow = "▾"
	}
	header := t.mark(styleHeading.Render(arrow+" "+title), focused)
	if !t.expanded[id] {
		t.add(header)
		return
	}
	inner := t.collect(false, body)
	t.add(lipgloss.JoinVertical(lipgloss.Left, header, styleSectionBody.Render(inner)))
}

func sectionID(title string) ID { return KeyID("section", title) }
