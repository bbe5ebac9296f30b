// Package board binds filtered slices of the store to presentation surfaces.
package board

import (
	"fmt"

	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/store"
)

// RowRenderer formats one project as a single display row. Returning an error
// drops that row from the panel without aborting the render.
type RowRenderer func(p model.Project, selected bool) (string, error)

// Panel is one board column: it subscribes to the store, keeps the slice of
// projects matching its status, and pushes rendered rows to its surface every
// time the store notifies. Panels only read snapshots; the one mutation a
// panel can cause goes through the drag target, never through the store
// directly.
type Panel struct {
	status  model.Status
	surface Surface
	render  RowRenderer

	st  *store.Store
	sub store.Subscription

	slice  []model.Project
	cursor int
}

// NewPanel builds a panel for the given status, subscribes it, and renders
// the current state immediately.
func NewPanel(st *store.Store, status model.Status, surface Surface, render RowRenderer) *Panel {
	p := &Panel{
		status:  status,
		surface: surface,
		render:  render,
		st:      st,
	}
	p.sub = st.Subscribe(p.onSnapshot)
	p.onSnapshot(st.Snapshot())
	return p
}

// Detach unsubscribes the panel from the store. Used by one-shot renderings;
// the TUI's panels live as long as the program does.
func (p *Panel) Detach() {
	p.st.Unsubscribe(p.sub)
}

// Status reports which column this panel shows.
func (p *Panel) Status() model.Status {
	return p.status
}

// Len reports how many projects are currently in the panel's slice.
func (p *Panel) Len() int {
	return len(p.slice)
}

// Selected returns the project under the cursor, if any.
func (p *Panel) Selected() (model.Project, bool) {
	if p.cursor < 0 || p.cursor >= len(p.slice) {
		return model.Project{}, false
	}
	return p.slice[p.cursor], true
}

// CursorUp moves the selection one row up and re-renders.
func (p *Panel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
		p.renderAll()
	}
}

// CursorDown moves the selection one row down and re-renders.
func (p *Panel) CursorDown() {
	if p.cursor < len(p.slice)-1 {
		p.cursor++
		p.renderAll()
	}
}

// SetDroppable forwards the drop affordance to the surface.
func (p *Panel) SetDroppable(on bool) {
	p.surface.SetDroppable(on)
}

func (p *Panel) onSnapshot(snap []model.Project) {
	p.slice = p.slice[:0]
	for _, pr := range snap {
		if pr.Status == p.status {
			p.slice = append(p.slice, pr)
		}
	}
	if p.cursor >= len(p.slice) {
		p.cursor = len(p.slice) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.renderAll()
}

// renderAll rebuilds the surface from the current slice. A row whose renderer
// fails is skipped so one bad record cannot blank the whole panel.
func (p *Panel) renderAll() {
	rows := make([]string, 0, len(p.slice))
	for i, pr := range p.slice {
		row, err := p.render(pr, i == p.cursor)
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	p.surface.SetTitle(fmt.Sprintf("%s (%d)", p.status.Pretty(), len(p.slice)))
	p.surface.SetRows(rows)
}
