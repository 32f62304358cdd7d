// Package gui is the immediate-mode widget vocabulary the editor draws with.
//
// Callers describe the whole interface every frame. Widgets report what the
// user did to them during that frame (a click, an edit) through their return
// values; nothing about the application is retained between frames. The
// only retained state belongs to the backend: focus, which combo boxes are
// open, which sections are expanded. That state is anchored by ID.
package gui

import (
	"fmt"
	"strings"
)

// ID is a stable widget identity derived from an application-supplied key.
type ID string

// KeyID builds an ID from its parts, e.g. KeyID("Weapon", 3, "tag", 1).
func KeyID(parts ...any) ID {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprint(p)
	}
	return ID(strings.Join(s, " "))
}

// UI is the widget vocabulary. Container methods call body synchronously
// with the same UI; widgets added inside body are laid out by the container.
type UI interface {
	Heading(text string)
	Label(text string)
	// Small renders de-emphasized hint text.
	Small(text string)
	Separator()

	// TextEdit edits a single line in place and reports whether it changed.
	TextEdit(value *string) bool
	// TextEditMultiline edits free text that may contain newlines.
	TextEditMultiline(value *string) bool
	// SliderInt edits *value within [lo, hi]. An out-of-range value is
	// clamped when the slider is drawn and counts as a change.
	SliderInt(value *int, lo, hi int, label string) bool

	// Button reports whether it was clicked this frame.
	Button(label string) bool
	// Radio draws one option of a choice and reports whether it was picked.
	Radio(label string, selected bool) bool
	// ComboBox shows selected and, while open, the menu drawn by body.
	// Picking a Button or Radio in the menu closes it.
	ComboBox(id ID, selected string, body func(UI))

	Horizontal(body func(UI))
	Vertical(body func(UI))
	// Group draws body inside a frame.
	Group(body func(UI))
	// Collapsing draws a header that expands to show body.
	Collapsing(title string, body func(UI))
}
