package enhance

import (
	"fmt"
	"io"

	"github.com/KunalPoonia/smart-attendance-system/internal/config"
	"github.com/KunalPoonia/smart-attendance-system/internal/dom"
	"github.com/KunalPoonia/smart-attendance-system/internal/events"
)

// Apply parses an HTML document from r, runs every enhancement pass at
// the given viewport width and returns the rewritten markup.
//
// It is a one-shot convenience for batch rewriting. Callers that need
// resize handling or interactive behavior should construct an Engine
// directly and keep it alive.
func Apply(r io.Reader, cfg *config.Config, width int) (string, error) {
	root, err := dom.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}

	page := dom.NewHTMLPage(root, cfg.PageSelectors())
	eng := New(page, events.NewDispatcher(), cfg, width)
	defer eng.Close()

	eng.RunAll()

	out, err := dom.RenderString(root)
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return out, nil
}
