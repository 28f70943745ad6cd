package config

import (
	"time"

	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/viewport"
)

// Config is the complete engine configuration.
type Config struct {
	Breakpoints BreakpointConfig `yaml:"breakpoints"`
	// DebounceMS is the resize quiet interval in milliseconds.
	DebounceMS int `yaml:"debounce_ms"`
	// TouchReleaseMS is the touch-feedback revert delay in milliseconds.
	TouchReleaseMS int             `yaml:"touch_release_ms"`
	Selectors      SelectorConfig  `yaml:"selectors"`
	Cards          CardSizes       `yaml:"cards"`
	QuickFilter    QuickFilterSize `yaml:"quick_filter"`
}

// BreakpointConfig holds the viewport class thresholds in CSS pixels.
// Compact and Narrow are inclusive upper bounds; Handheld is exclusive.
type BreakpointConfig struct {
	Compact  int `yaml:"compact"`
	Narrow   int `yaml:"narrow"`
	Handheld int `yaml:"handheld"`
}

// SelectorConfig names the structural hooks in the rendered markup.
// Classes are given without a leading dot, ids without a hash.
type SelectorConfig struct {
	FilterForm     string   `yaml:"filter_form"`
	Table          string   `yaml:"table"`
	NavToggler     string   `yaml:"nav_toggler"`
	NavCollapse    string   `yaml:"nav_collapse"`
	NavLink        string   `yaml:"nav_link"`
	ButtonGroup    string   `yaml:"button_group"`
	ListViewButton string   `yaml:"list_view_button"`
	GridViewButton string   `yaml:"grid_view_button"`
	StatCard       string   `yaml:"stat_card"`
	StatIcon       string   `yaml:"stat_icon"`
	StatValue      string   `yaml:"stat_value"`
	QuickFilters   string   `yaml:"quick_filters"`
	Interactive    []string `yaml:"interactive"`
}

// CardSizes holds the font sizes the card density pass applies. The
// values are pure functions of the viewport class, which is why the
// pass may re-apply them unconditionally.
type CardSizes struct {
	CompactIcon  string `yaml:"compact_icon"`
	CompactValue string `yaml:"compact_value"`
	NarrowIcon   string `yaml:"narrow_icon"`
	NarrowValue  string `yaml:"narrow_value"`
}

// QuickFilterSize holds the tap-target sizing the quick-filter pass
// applies at compact width.
type QuickFilterSize struct {
	MinHeight string `yaml:"min_height"`
	Padding   string `yaml:"padding"`
}

// Default returns the configuration matching the attendance pages.
func Default() *Config {
	sel := dom.DefaultSelectors()
	return &Config{
		Breakpoints: BreakpointConfig{
			Compact:  576,
			Narrow:   768,
			Handheld: 992,
		},
		DebounceMS:     250,
		TouchReleaseMS: 150,
		Selectors: SelectorConfig{
			FilterForm:     sel.FilterForm,
			Table:          sel.Table,
			NavToggler:     sel.NavToggler,
			NavCollapse:    sel.NavCollapse,
			NavLink:        sel.NavLink,
			ButtonGroup:    sel.ButtonGroup,
			ListViewButton: sel.ListViewButton,
			GridViewButton: sel.GridViewButton,
			StatCard:       sel.StatCard,
			StatIcon:       sel.StatIcon,
			StatValue:      sel.StatValue,
			QuickFilters:   sel.QuickFilters,
			Interactive:    sel.Interactive,
		},
		Cards: CardSizes{
			CompactIcon:  "2rem",
			CompactValue: "1.25rem",
			NarrowIcon:   "2.5rem",
			NarrowValue:  "1.5rem",
		},
		QuickFilter: QuickFilterSize{
			MinHeight: "44px",
			Padding:   "0.5rem 0.75rem",
		},
	}
}

// Quiet returns the resize debounce interval.
func (c *Config) Quiet() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// ReleaseDelay returns the touch-feedback revert delay.
func (c *Config) ReleaseDelay() time.Duration {
	return time.Duration(c.TouchReleaseMS) * time.Millisecond
}

// PageBreakpoints converts the thresholds to a viewport classifier.
func (c *Config) PageBreakpoints() viewport.Breakpoints {
	return viewport.Breakpoints{
		Compact:  c.Breakpoints.Compact,
		Narrow:   c.Breakpoints.Narrow,
		Handheld: c.Breakpoints.Handheld,
	}
}

// PageSelectors converts the selector names to the page adapter form.
func (c *Config) PageSelectors() dom.Selectors {
	return dom.Selectors{
		FilterForm:     c.Selectors.FilterForm,
		Table:          c.Selectors.Table,
		NavToggler:     c.Selectors.NavToggler,
		NavCollapse:    c.Selectors.NavCollapse,
		NavLink:        c.Selectors.NavLink,
		ButtonGroup:    c.Selectors.ButtonGroup,
		ListViewButton: c.Selectors.ListViewButton,
		GridViewButton: c.Selectors.GridViewButton,
		StatCard:       c.Selectors.StatCard,
		StatIcon:       c.Selectors.StatIcon,
		StatValue:      c.Selectors.StatValue,
		QuickFilters:   c.Selectors.QuickFilters,
		Interactive:    c.Selectors.Interactive,
	}
}
