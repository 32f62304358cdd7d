// Package check reports tag references that no longer name a dictionary
// entry, once or every time the document changes.
package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/document"
)

// ErrDangling is returned by Report.Err when at least one reference dangles.
var ErrDangling = errors.New("dangling tag references")

func checkLog() zerolog.Logger {
	return log.With().Str("module", "check").Logger()
}

// Report is the outcome of checking one document.
type Report struct {
	Path    string
	Missing bool // no document at Path
	Refs    []catalog.DanglingRef
	LoadErr error
}

// Run checks the document at path.
func Run(path string) Report {
	r := Report{Path: path}
	c, err := document.ReadFile(path)
	switch {
	case err != nil:
		r.LoadErr = err
	case c == nil:
		r.Missing = true
	default:
		r.Refs = c.Dangling()
	}
	return r
}

// Err reports a failed load, or ErrDangling when any reference dangles.
func (r Report) Err() error {
	if r.LoadErr != nil {
		return r.LoadErr
	}
	if len(r.Refs) > 0 {
		return fmt.Errorf("%s: %d %w", r.Path, len(r.Refs), ErrDangling)
	}
	return nil
}

// Write prints one line per dangling reference followed by a summary.
func (r Report) Write(w io.Writer) error {
	if r.LoadErr != nil {
		_, err := fmt.Fprintf(w, "%s: %v\n", r.Path, r.LoadErr)
		return err
	}
	if r.Missing {
		_, err := fmt.Fprintf(w, "%s: no document\n", r.Path)
		return err
	}
	for _, ref := range r.Refs {
		name := ref.EntityName
		if name == "" {
			name = "(unnamed)"
		}
		if _, err := fmt.Fprintf(w, "%s: %s %d %q tag %d: %q\n",
			r.Path, ref.Kind, ref.Entity, name, ref.Ref, ref.Name); err != nil {
			return err
		}
	}
	var err error
	switch n := len(r.Refs); n {
	case 0:
		_, err = fmt.Fprintf(w, "%s: no dangling references\n", r.Path)
	case 1:
		_, err = fmt.Fprintf(w, "%s: 1 dangling reference\n", r.Path)
	default:
		_, err = fmt.Fprintf(w, "%s: %d dangling references\n", r.Path, n)
	}
	return err
}
