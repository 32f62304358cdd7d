package editor

import (
	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/gui"
)

// WeaponEditor draws every field of w and reports whether "Drop" was
// clicked. i is the weapon's position, used only for widget identity.
func WeaponEditor(ui gui.UI, w *catalog.Weapon, i int, v catalog.View) bool {
	ui.Separator()

	textField(ui, &w.Name, "Name")
	multilineField(ui, &w.Fluff, "Fluff")
	ui.SliderInt(&w.Cost, catalog.CostMin, catalog.CostMax, "Cost")

	ui.Horizontal(func(ui gui.UI) {
		enumPicker(ui, gui.KeyID("Weapon class", i), &w.Class, catalog.WeaponClasses)
		ui.Label("Weapon class")
	})
	ui.Horizontal(func(ui gui.UI) {
		enumPicker(ui, gui.KeyID("Targeting", i), &w.Targeting, catalog.Targetings)
		ui.Label("Targeting")
	})

	ui.SliderInt(&w.RangeMax, catalog.RangeMin, catalog.RangeMax, "Maximum range")
	ui.SliderInt(&w.RangeMin, catalog.RangeMin, catalog.RangeMax, "Minimum range")

	tagRefsEditor(ui, &w.Tags, catalog.KindWeapon, i, v)

	textField(ui, &w.Damage, "Damage")
	multilineField(ui, &w.Rules, "Rules")

	return ui.Button("Drop")
}

// SystemEditor draws every field of s and reports whether "Drop" was
// clicked. i is the system's position, used only for widget identity.
func SystemEditor(ui gui.UI, s *catalog.System, i int, v catalog.View) bool {
	ui.Separator()

	textField(ui, &s.Name, "Name")
	multilineField(ui, &s.Fluff, "Fluff")
	ui.SliderInt(&s.Cost, catalog.CostMin, catalog.CostMax, "Cost")

	ui.Horizontal(func(ui gui.UI) {
		label := "Unlimited"
		if s.IsLimited() {
			label = "Limited"
		}
		if ui.Button(label) {
			s.ToggleLimited()
		}
		if s.Limited != nil {
			ui.SliderInt(s.Limited, catalog.LimitMin, catalog.LimitMax, "Limit")
		}
	})

	tagRefsEditor(ui, &s.Tags, catalog.KindSystem, i, v)

	multilineField(ui, &s.Rules, "Rules")

	return ui.Button("Drop")
}

func textField(ui gui.UI, value *string, label string) {
	ui.Horizontal(func(ui gui.UI) {
		ui.TextEdit(value)
		ui.Label(label)
	})
}

func multilineField(ui gui.UI, value *string, label string) {
	ui.Horizontal(func(ui gui.UI) {
		ui.TextEditMultiline(value)
		ui.Label(label)
	})
}

// member is satisfied by the catalog enumerations.
type member interface {
	~string
	String() string
}

// enumPicker shows the current member and offers every member as a radio.
func enumPicker[E member](ui gui.UI, id gui.ID, cur *E, members []E) {
	ui.ComboBox(id, (*cur).String(), func(ui gui.UI) {
		for _, m := range members {
			if ui.Radio(m.String(), *cur == m) {
				*cur = m
			}
		}
	})
}
