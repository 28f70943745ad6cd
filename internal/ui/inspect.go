package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KunalPoonia/smart-attendance-system/internal/config"
	"github.com/KunalPoonia/smart-attendance-system/internal/enhance"
	"github.com/KunalPoonia/smart-attendance-system/internal/viewport"
)

// presetWidths are the breakpoint-adjacent widths tab cycles through.
var presetWidths = []int{375, 576, 768, 992, 1280}

// inspectKeyMap defines key bindings for the inspector
type inspectKeyMap struct {
	Narrower key.Binding
	Wider    key.Binding
	Preset   key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k inspectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Preset, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k inspectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrower, k.Wider, k.Preset, k.Quit},
	}
}

func defaultInspectKeys() inspectKeyMap {
	return inspectKeyMap{
		Narrower: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "narrower"),
		),
		Wider: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "wider"),
		),
		Preset: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next breakpoint"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InspectModel is the Bubble Tea model for the pass inspector.
type InspectModel struct {
	width  int
	bp     viewport.Breakpoints
	passes []enhance.PassInfo
	keys   inspectKeyMap
	help   help.Model
}

// NewInspectModel creates an inspector at the given simulated width.
func NewInspectModel(cfg *config.Config, width int) InspectModel {
	return InspectModel{
		width:  width,
		bp:     cfg.PageBreakpoints(),
		passes: enhance.Passes(),
		keys:   defaultInspectKeys(),
		help:   help.New(),
	}
}

// Init implements tea.Model
func (m InspectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Narrower):
		if m.width >= 10 {
			m.width -= 10
		}
	case key.Matches(keyMsg, m.keys.Wider):
		m.width += 10
	case key.Matches(keyMsg, m.keys.Preset):
		m.width = nextPreset(m.width)
	}
	return m, nil
}

// nextPreset returns the first preset wider than the current width,
// wrapping to the narrowest.
func nextPreset(width int) int {
	for _, w := range presetWidths {
		if w > width {
			return w
		}
	}
	return presetWidths[0]
}

// View implements tea.Model
func (m InspectModel) View() string {
	class := m.bp.Classify(m.width)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Responsive Pass Inspector"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Viewport: %s  →  %s\n\n",
		WidthStyle.Render(fmt.Sprintf("%dpx", m.width)),
		ClassStyle.Render(class.String()),
	))

	for _, p := range m.passes {
		policy := "cosmetic"
		if p.Structural {
			policy = "structural"
		}
		cadence := "once at startup"
		if p.WidthSensitive {
			cadence = "re-runs on resize"
		}

		line := fmt.Sprintf("  %-24s %s %s",
			p.Name,
			PolicyStyle.Render(fmt.Sprintf("%-11s", policy)),
			PolicyStyle.Render(cadence),
		)
		if p.Applies(class) {
			b.WriteString(PassAppliesStyle.Render("▶") + line + "\n")
		} else {
			b.WriteString(PassSkippedStyle.Render("·"+line) + "\n")
		}
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunInspect launches the inspector program.
func RunInspect(cfg *config.Config, width int) error {
	p := tea.NewProgram(NewInspectModel(cfg, width))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}
	return nil
}
