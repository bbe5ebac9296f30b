package board

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/ui"
)

// ErrBadRecord marks a project that cannot be rendered as a row.
var ErrBadRecord = errors.New("malformed project record")

// DefaultRow is the standard row renderer: status glyph, title, crew size.
// Records without an id are refused so the panel skips them.
func DefaultRow(p model.Project, selected bool) (string, error) {
	if p.ID == "" {
		return "", ErrBadRecord
	}

	t := ui.Current()
	glyph := ui.PendingStyle.Render(t.SymActive)
	title := p.Title
	if p.Status == model.StatusFinished {
		glyph = ui.SuccessStyle.Render(t.SymFinished)
		title = ui.DoneStyle.Render(title)
	}

	crew := ui.MutedStyle.Render(fmt.Sprintf("(%d)", p.People))
	line := fmt.Sprintf("%s %s %s", glyph, title, crew)

	prefix := "  "
	if selected {
		prefix = ui.SelectedStyle.Render("> ")
	}
	return prefix + line, nil
}
