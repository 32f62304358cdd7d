package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/obedit/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "obedit",
	Short: "Oxidized Battlegroup data editor",
	Long: `obedit edits the tag dictionary, weapons and systems of an Oxidized
Battlegroup catalog. The catalog is loaded from the document file (or the
user-config store when the file is missing) and saved to both on exit.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runEditor,
}

// Execute runs the root command. Errors are printed to stderr and exit 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .obedit.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.StringP("document", "d", "", "document path (default data.json)")
	pf.String("log-file", "", "log file (default obedit.log)")

	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = viper.BindPFlag("document_path", pf.Lookup("document"))
	_ = viper.BindPFlag("log_file", pf.Lookup("log-file"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("." + config.AppName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("OBEDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
