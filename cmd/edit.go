package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/obedit/internal/config"
	"github.com/papapumpkin/obedit/internal/store"
	"github.com/papapumpkin/obedit/internal/tui"
)

// runEditor launches the editor on the configured document.
func runEditor(cmd *cobra.Command, _ []string) error {
	if !isStdoutTTY() {
		return fmt.Errorf("obedit requires a TTY (terminal)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closeLog, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	p := tui.Persistence{DocumentPath: cfg.DocumentPath, Key: cfg.Storage.Key}

	// An unusable store only loses the mirror copy; the document still works.
	st, err := store.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Warn().Err(err).Str("backend", cfg.Storage.Backend).Msg("user-config store unavailable")
	} else {
		p.Store = st
		defer st.Close()
	}

	log.Info().Str("document", cfg.DocumentPath).Str("store", cfg.Storage.Path).Msg("editor starting")
	return tui.Run(ctx, p)
}

func isStdoutTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
