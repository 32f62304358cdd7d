// Package document converts catalogs to and from their JSON document form
// and reads and writes the document file.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/papapumpkin/obedit/internal/catalog"
)

func docLog() zerolog.Logger {
	return log.With().Str("module", "document").Logger()
}

// Save encodes c as a JSON document. Nil collections are written as empty
// arrays.
func Save(c *catalog.Catalog) ([]byte, error) {
	if c == nil {
		c = catalog.New()
	}
	c.Normalize()
	data, err := sonic.ConfigStd.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return data, nil
}

// Load decodes a JSON document. Unknown fields are ignored and missing
// fields take their defaults; an unknown enumeration member is an error.
func Load(data []byte) (*catalog.Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("decoding catalog: empty document")
	}
	c := catalog.New()
	if err := sonic.ConfigStd.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c.Normalize()
	return c, nil
}

// Decode is Load for startup: anything that does not decode yields an empty
// catalog.
func Decode(data []byte) *catalog.Catalog {
	c, err := Load(data)
	if err != nil {
		l := docLog()
		l.Warn().Err(err).Msg("starting with an empty catalog")
		return catalog.New()
	}
	return c
}

// ReadFile loads the document at path. A missing file returns (nil, nil) so
// callers can fall back to another source.
func ReadFile(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// WriteFile saves c to path through a temporary file in the same directory,
// so a failed write leaves the previous document intact.
func WriteFile(path string, c *catalog.Catalog) error {
	data, err := Save(c)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	l := docLog()
	l.Debug().Str("path", path).Int("bytes", len(data)).Msg("document written")
	return nil
}
