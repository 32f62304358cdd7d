// Package editor draws the data editor: the tag dictionary section and the
// weapon and system sections, each frame, against a gui.UI.
//
// Widgets write through to the catalog while they are drawn. Structural
// edits that would disturb an in-progress pass (dropping an entry, removing
// a reference) are recorded and applied once the pass is over.
package editor

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/gui"
)

func editorLog() zerolog.Logger {
	return log.With().Str("module", "editor").Logger()
}

// Section titles.
const (
	TitleTags    = "Tags"
	TitleWeapons = "Weapons"
	TitleSystems = "Systems"
)

// Session draws the editor once per frame. It owns no catalog data; the
// host passes the same catalog to every Frame and persists it on exit.
type Session struct {
	frames uint64
}

// NewSession returns a session that has drawn no frames.
func NewSession() *Session {
	return &Session{}
}

// Frames reports how many frames have been drawn.
func (s *Session) Frames() uint64 { return s.frames }

// Frame draws the whole editor for c. The lookup view is built after the
// tag section so that reference widgets see this frame's tag edits.
func (s *Session) Frame(ui gui.UI, c *catalog.Catalog) {
	s.frames++

	ui.Heading("Data editor")
	ui.Separator()

	ui.Collapsing(TitleTags, func(ui gui.UI) {
		tagSection(ui, c)
	})

	view := c.Lookup()

	ui.Collapsing(TitleWeapons, func(ui gui.UI) {
		weaponSection(ui, c, view)
	})
	ui.Collapsing(TitleSystems, func(ui gui.UI) {
		systemSection(ui, c, view)
	})
}

func tagSection(ui gui.UI, c *catalog.Catalog) {
	l := editorLog()
	ui.Horizontal(func(ui gui.UI) {
		if ui.Button("Add tag") {
			i := c.AddTag()
			l.Debug().Int("index", i).Msg("tag added")
		}
		if ui.Button("Sort") {
			c.SortTags()
			l.Debug().Int("tags", len(c.TagDB)).Msg("tags sorted")
		}
	})

	dropped := -1
	for i := range c.TagDB {
		tag := &c.TagDB[i]
		ui.Vertical(func(ui gui.UI) {
			ui.Separator()
			textField(ui, &tag.Name, "Name")
			multilineField(ui, &tag.Fluff, "Fluff")
			if ui.Button("Drop") {
				dropped = i
			}
		})
	}
	if dropped >= 0 {
		l.Debug().Int("index", dropped).Str("name", c.TagDB[dropped].Name).Msg("tag dropped")
		c.DropTag(dropped)
	}
}

func weaponSection(ui gui.UI, c *catalog.Catalog, v catalog.View) {
	l := editorLog()
	if ui.Button("Add weapon") {
		i := c.AddWeapon()
		l.Debug().Int("index", i).Msg("weapon added")
	}

	dropped := -1
	for i := range c.Weapons {
		if WeaponEditor(ui, &c.Weapons[i], i, v) {
			dropped = i
		}
	}
	if dropped >= 0 {
		l.Debug().Int("index", dropped).Str("name", c.Weapons[dropped].Name).Msg("weapon dropped")
		c.DropWeapon(dropped)
	}
}

func systemSection(ui gui.UI, c *catalog.Catalog, v catalog.View) {
	l := editorLog()
	if ui.Button("Add system") {
		i := c.AddSystem()
		l.Debug().Int("index", i).Msg("system added")
	}

	dropped := -1
	for i := range c.Systems {
		if SystemEditor(ui, &c.Systems[i], i, v) {
			dropped = i
		}
	}
	if dropped >= 0 {
		l.Debug().Int("index", dropped).Str("name", c.Systems[dropped].Name).Msg("system dropped")
		c.DropSystem(dropped)
	}
}
