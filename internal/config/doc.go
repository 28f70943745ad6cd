// Package config provides YAML configuration for the responsive
// enhancement engine.
//
// The configuration covers the tunables a deployment might adjust
// without touching code: breakpoint thresholds, the resize debounce
// quiet interval, the touch-feedback release delay, the structural
// selectors the page adapter queries, and the cosmetic sizing values
// the card density and quick-filter passes apply. Everything has a
// default matching the attendance pages; an absent config file is not
// an error.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/enhance/config.yaml or $HOME/.config/enhance/config.yaml
//   - macOS: $HOME/.config/enhance/config.yaml
//   - Windows: %LOCALAPPDATA%\enhance\config.yaml
//
// Commands also accept an explicit --config path, which bypasses the
// platform lookup entirely.
package config
