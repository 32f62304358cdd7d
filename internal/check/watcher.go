package check

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long the document must stay quiet before it is re-checked.
const Debounce = 100 * time.Millisecond

// Watcher re-checks a document whenever it is written.
type Watcher struct {
	Path    string
	Reports <-chan Report // Read-only external channel

	reports chan Report // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the document at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	ch := make(chan Report, 16)
	w := &Watcher{
		Path:    filepath.Clean(path),
		Reports: ch,
		reports: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching. The document's directory is watched rather than the
// file itself because saves replace the file by renaming over it.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.Path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Reports channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.reports)
}

func (w *Watcher) loop() {
	defer close(w.done)
	l := checkLog()

	var pending time.Time
	ticker := time.NewTicker(Debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= Debounce {
				pending = time.Time{}
				w.reports <- Run(w.Path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
			l.Warn().Err(err).Str("path", w.Path).Msg("watch error")
		}
	}
}

// Watch prints a report for path now and again after every change until ctx
// is done.
func Watch(ctx context.Context, path string, out io.Writer) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.watcher.Close()
		return err
	}
	defer w.Stop()

	if err := Run(path).Write(out); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-w.Reports:
			if err := r.Write(out); err != nil {
				return err
			}
		}
	}
}
