package editor

import (
	"fmt"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/gui"
)

// RemoveLabel is the label of the button that removes a tag reference.
const RemoveLabel = "X"

// InvalidTagLabel is shown in place of a reference that does not resolve.
func InvalidTagLabel(ref string) string {
	return fmt.Sprintf("!!! Invalid Tag ID: %s !!!", ref)
}

// displayName keeps blank tag names visible and clickable.
func displayName(name string) string {
	if name == "" {
		return "(blank)"
	}
	return name
}

// TagSelector draws one tag reference. A resolved reference shows a combo
// box whose menu lists every dictionary entry; picking one overwrites ref.
// A dangling reference shows InvalidTagLabel. It reports whether the remove
// button was clicked; the caller removes the reference after its pass.
func TagSelector(ui gui.UI, ref *string, v catalog.View, id gui.ID) bool {
	removed := false
	ui.Group(func(ui gui.UI) {
		ui.Horizontal(func(ui gui.UI) {
			if tag, ok := v.Resolve(*ref); ok {
				ui.ComboBox(id, displayName(tag.Name), func(ui gui.UI) {
					for _, t := range v.Tags() {
						ui.Horizontal(func(ui gui.UI) {
							if ui.Button(displayName(t.Name)) {
								*ref = t.Name
							}
							ui.Label("│ " + t.Fluff)
						})
					}
				})
			} else {
				ui.Label(InvalidTagLabel(*ref))
			}
			removed = ui.Button(RemoveLabel)
		})
	})
	return removed
}

// tagRefsEditor draws an entity's references followed by "Add Tag". At most
// one removal per frame is applied, after every selector has been drawn.
func tagRefsEditor(ui gui.UI, refs *catalog.TagRefs, kind catalog.EntityKind, entity int, v catalog.View) {
	removed := -1
	ui.Horizontal(func(ui gui.UI) {
		for j := range *refs {
			if TagSelector(ui, &(*refs)[j], v, gui.KeyID(kind, entity, "tag", j)) {
				removed = j
			}
		}
		if removed >= 0 {
			refs.Remove(removed)
		}

		if ui.Button("Add Tag") {
			// An empty dictionary has nothing to point at; leave refs alone.
			if refs.Add(v) {
				l := editorLog()
				l.Debug().Str("kind", string(kind)).Int("entity", entity).Msg("tag reference added")
			}
		}
	})
}
