package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/obedit/internal/catalog"
)

// StatusBar renders the top bar: document path, collection counts, dangling
// references and the outcome of the last save.
type StatusBar struct {
	Path     string
	Tags     int
	Weapons  int
	Systems  int
	Dangling int
	Width    int

	// Outcome of the most recent save, empty before the first one.
	Saved   bool
	SaveErr error
}

// Refresh recomputes the counts from c.
func (s *StatusBar) Refresh(c *catalog.Catalog) {
	s.Tags = len(c.TagDB)
	s.Weapons = len(c.Weapons)
	s.Systems = len(c.Systems)
	s.Dangling = len(c.Dangling())
}

// View renders the status bar as a single line. The path is truncated first
// when the terminal is too narrow.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	var right []string
	if compact {
		right = append(right, styleStatusValue.Render(fmt.Sprintf("%d/%d/%d", s.Tags, s.Weapons, s.Systems)))
	} else {
		right = append(right,
			styleStatusLabel.Render("tags ")+styleStatusValue.Render(fmt.Sprint(s.Tags)),
			styleStatusLabel.Render("weapons ")+styleStatusValue.Render(fmt.Sprint(s.Weapons)),
			styleStatusLabel.Render("systems ")+styleStatusValue.Render(fmt.Sprint(s.Systems)),
		)
	}
	if s.Dangling > 0 {
		right = append(right, styleStatusWarn.Render(fmt.Sprintf("⚠ %d dangling", s.Dangling)))
	}
	switch {
	case s.SaveErr != nil:
		right = append(right, styleStatusError.Render("save failed"))
	case s.Saved:
		right = append(right, styleStatusOK.Render("saved"))
	}
	rightText := strings.Join(right, "  ")

	// The outer styleStatusBar applies Padding(0,1), consuming 2 columns.
	const barPadding = 2
	inner := max(s.Width-barPadding, 0)
	avail := inner - lipgloss.Width(rightText) - 1
	path := TruncateWithEllipsis(s.Path, max(avail, 0))
	left := styleStatusLabel.Render(path)

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(rightText), 1)
	return styleStatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + rightText)
}
