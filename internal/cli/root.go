package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version injected via ldflags
	commit  = "none"
	date    = "unknown"
)

// SetVersion records the build metadata shown by --version. Called by the
// main package with ldflags-injected values.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute builds the command tree and runs it under ctx. Every command
// receives a context carrying the logger and the merged configuration.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "grafio",
		Short:        "grafio moves attributed graphs between formats",
		Long:         `grafio reads and writes attributed graphs as GraphML (plain, gzip or zstd), YAML, Graphviz DOT and SQLite snapshots, picks formats by file extension, and ships generators for common topologies.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("grafio %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with flag defaults")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
