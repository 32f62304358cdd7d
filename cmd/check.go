package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/obedit/internal/check"
	"github.com/papapumpkin/obedit/internal/config"
)

// checkCmd reports tag references that name no dictionary entry.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report dangling tag references in the document",
	Long: `Load the document and list every weapon and system tag reference that
does not name an entry in the tag dictionary. Exits non-zero when any
reference dangles. With --watch, re-checks each time the document is saved.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolP("watch", "w", false, "re-check whenever the document changes")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	closeLog, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	out := cmd.OutOrStdout()
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return check.Watch(cmd.Context(), cfg.DocumentPath, out)
	}

	r := check.Run(cfg.DocumentPath)
	if err := r.Write(out); err != nil {
		return err
	}
	return r.Err()
}
