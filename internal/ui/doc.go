// Package ui provides the interactive pass inspector for the enhance
// CLI.
//
// The inspector is a small Bubble Tea program: adjust a simulated
// viewport width with the arrow keys (or jump between breakpoint
// presets with tab) and see the resulting viewport class plus each
// enhancement pass's decision at that width. It is a diagnostic for
// verifying breakpoint configuration without loading a page.
//
// Logging is controlled via the ENHANCE_LOG_LEVEL environment
// variable; leave it unset so zap stays silent and the rendered TUI
// stays clean.
package ui
