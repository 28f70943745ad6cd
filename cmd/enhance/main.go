// Enhance is a responsive enhancement tool for server-rendered HTML pages.
//
// It rewrites page markup for narrow viewports: collapsible filter panels,
// labeled table cells, stacked button groups, density tuning and more. The
// same pass pipeline can be applied in batch, inspected interactively, or
// served with live reload while editing templates.
//
// Usage:
//
//	enhance [command] [flags]
//
// See 'enhance --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KunalPoonia/smart-attendance-system/internal/logging"
	"github.com/KunalPoonia/smart-attendance-system/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Responsive Enhancement Tool",
	Long: `A tool for adapting server-rendered HTML pages to narrow viewports.

Runs a fixed pipeline of enhancement passes against a page at a simulated
viewport width: collapsible filter panels, per-cell table labels, stacked
button groups, card density tuning and quick-filter sizing.

Commands can rewrite a page in batch (apply), report viewport classes
(classify), explore pass decisions interactively (inspect), or serve the
enhanced page with live reload (preview).`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("enhance %s (commit: %s)\n", version.Version, version.Commit)
	},
}
