// Package tui hosts the data editor in a terminal: a bubbletea program that
// draws one editor frame per key press, and the startup load and exit save
// of the catalog.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for m.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(m AppModel, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(m, allOpts...)
}

// Run loads the catalog, runs the editor until the user quits and saves on
// the way out. A failed exit save is returned so the process can report it.
func Run(ctx context.Context, p Persistence, opts ...tea.ProgramOption) error {
	c := p.Load(ctx)
	m := NewAppModel(c, p)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, runErr := NewProgram(m, opts...).Run()

	fm, ok := final.(AppModel)
	if !ok || !fm.Quitting {
		// The program ended without the quit key; the catalog has not been
		// saved yet.
		if err := p.Save(context.WithoutCancel(ctx), c); err != nil {
			l := tuiLog()
			l.Error().Err(err).Msg("exit save failed")
			return fmt.Errorf("saving catalog: %w", err)
		}
	} else if fm.StatusBar.SaveErr != nil {
		return fmt.Errorf("saving catalog: %w", fm.StatusBar.SaveErr)
	}

	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
