package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/document"
	"github.com/papapumpkin/obedit/internal/store"
)

// Persistence says where the catalog is read from at startup and written to
// on save. Either destination may be left empty.
type Persistence struct {
	DocumentPath string
	Store        store.Store
	Key          string
}

// Load returns the catalog to edit: the document file when it can be read,
// else the value in the store, else an empty catalog. Failures are logged
// and never returned.
func (p Persistence) Load(ctx context.Context) *catalog.Catalog {
	l := tuiLog()

	if p.DocumentPath != "" {
		c, err := document.ReadFile(p.DocumentPath)
		switch {
		case err != nil:
			l.Warn().Err(err).Str("path", p.DocumentPath).Msg("document unreadable, trying store")
		case c != nil:
			l.Info().Str("path", p.DocumentPath).Msg("catalog loaded from document")
			return c
		}
	}

	if p.Store != nil {
		data, err := p.Store.Get(ctx, p.Key)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			l.Warn().Err(err).Str("key", p.Key).Msg("store unreadable")
		default:
			l.Info().Str("key", p.Key).Msg("catalog loaded from store")
			return document.Decode(data)
		}
	}

	l.Info().Msg("starting with an empty catalog")
	return catalog.New()
}

// Save writes c to the document path and to the store. Every destination is
// attempted; the returned error joins all failures.
func (p Persistence) Save(ctx context.Context, c *catalog.Catalog) error {
	data, err := document.Save(c)
	if err != nil {
		return err
	}

	var errs []error
	if p.DocumentPath != "" {
		if err := document.WriteFile(p.DocumentPath, c); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Store != nil {
		if err := p.Store.Set(ctx, p.Key, data); err != nil {
			errs = append(errs, fmt.Errorf("storing %q: %w", p.Key, err))
		}
	}
	return errors.Join(errs...)
}
