package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KunalPoonia/smart-attendance-system/internal/config"
	"github.com/KunalPoonia/smart-attendance-system/internal/enhance"
	"github.com/KunalPoonia/smart-attendance-system/internal/preview"
	"github.com/KunalPoonia/smart-attendance-system/internal/ui"
)

// Command flags
var (
	configPath  string
	simWidth    int
	outputPath  string
	previewAddr string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	rootCmd.PersistentFlags().IntVar(&simWidth, "width", 390, "Simulated viewport width in pixels")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadConfig resolves the active configuration for the current invocation
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyCmd rewrites an HTML document at a simulated width
var applyCmd = &cobra.Command{
	Use:   "apply [file]",
	Short: "Rewrite an HTML page for a simulated viewport width",
	Long: `Run every enhancement pass against an HTML document and print the result.

Reads the page from the given file, or from stdin when no file is given.
The pass pipeline is the same one the preview server and the inspector
use: which passes fire depends on the viewport class of --width.`,
	Example: `  # Enhance a page for a phone-sized viewport
  enhance apply attendance.html --width 390

  # Pipe a template through at tablet width
  cat attendance.html | enhance apply --width 768 -o enhanced.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write result to file instead of stdout")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	out, err := enhance.Apply(in, cfg, simWidth)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		return nil
	}

	fmt.Println(out)
	return nil
}

// classifyCmd reports the viewport class for one or more widths
var classifyCmd = &cobra.Command{
	Use:   "classify <width>...",
	Short: "Report the viewport class for the given widths",
	Long: `Classify pixel widths against the configured breakpoints.

Each width maps to exactly one of the classes compact, narrow, handheld
or wide. Classes decide which enhancement passes fire.`,
	Example: `  # One width
  enhance classify 576

  # Several at once
  enhance classify 375 576 768 992 1280`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	bp := cfg.PageBreakpoints()

	for _, arg := range args {
		width, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid width %q: %w", arg, err)
		}
		fmt.Printf("%dpx\t%s\n", width, bp.Classify(width))
	}
	return nil
}

// inspectCmd launches the interactive pass inspector
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Explore pass decisions interactively",
	Long: `Launch an interactive TUI showing which enhancement passes fire at a
given viewport width.

Adjust the width with the arrow keys or cycle through breakpoint presets
with tab; the pass table updates live.`,
	Example: `  # Start at the default width
  enhance inspect

  # Start at a specific width
  enhance inspect --width 768`,
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("inspect requires an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return ui.RunInspect(cfg, simWidth)
}

// previewCmd serves the enhanced page with live reload
var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Serve an enhanced page with live reload",
	Long: `Serve the enhanced rendering of an HTML file over HTTP.

The served page reloads automatically whenever the source file changes
on disk. The simulated width defaults to --width and can be overridden
per request with a ?width= query parameter.`,
	Example: `  # Serve at the default address
  enhance preview attendance.html

  # Custom address and width
  enhance preview attendance.html --addr localhost:9000 --width 576`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewAddr, "addr", "localhost:8675", "Listen address for the preview server")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv, err := preview.New(&preview.Config{
		Addr:   previewAddr,
		Source: args[0],
		Width:  simWidth,
	}, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Previewing %s at http://%s (width %dpx)\n", args[0], previewAddr, simWidth)
	return srv.Run(ctx)
}
