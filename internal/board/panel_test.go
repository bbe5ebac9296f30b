package board

import (
	"fmt"
	"strings"
	"testing"

	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/store"
)

type fakeSurface struct {
	title     string
	rows      []string
	droppable bool
	renders   int
}

func (s *fakeSurface) SetTitle(title string) { s.title = title }
func (s *fakeSurface) SetDroppable(on bool)  { s.droppable = on }
func (s *fakeSurface) SetRows(rows []string) {
	s.rows = append([]string(nil), rows...)
	s.renders++
}

// plainRow keeps assertions free of styling noise.
func plainRow(p model.Project, selected bool) (string, error) {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	return prefix + p.Title, nil
}

func TestPanel_FiltersByStatusInSnapshotOrder(t *testing.T) {
	st := store.New()
	st.Create("first", "aaaaa", 1)
	st.Create("second", "aaaaa", 1)
	id3 := st.Create("third", "aaaaa", 1)
	st.Move(id3, model.StatusFinished)

	active := &fakeSurface{}
	NewPanel(st, model.StatusActive, active, plainRow)

	if len(active.rows) != 2 {
		t.Fatalf("active rows = %d, want 2", len(active.rows))
	}
	if !strings.Contains(active.rows[0], "first") || !strings.Contains(active.rows[1], "second") {
		t.Fatalf("rows out of snapshot order: %v", active.rows)
	}
	if !strings.Contains(active.title, "Active (2)") {
		t.Fatalf("unexpected title: %q", active.title)
	}
}

func TestPanel_RerendersBothSidesOnMove(t *testing.T) {
	st := store.New()
	idA := st.Create("A", "aaaaa", 1)
	st.Create("B", "aaaaa", 1)

	activeSurface := &fakeSurface{}
	finishedSurface := &fakeSurface{}
	NewPanel(st, model.StatusActive, activeSurface, plainRow)
	NewPanel(st, model.StatusFinished, finishedSurface, plainRow)

	st.Move(idA, model.StatusFinished)

	if len(activeSurface.rows) != 1 || !strings.Contains(activeSurface.rows[0], "B") {
		t.Fatalf("active slice still includes A: %v", activeSurface.rows)
	}
	if len(finishedSurface.rows) != 1 || !strings.Contains(finishedSurface.rows[0], "A") {
		t.Fatalf("finished slice missing A: %v", finishedSurface.rows)
	}

	// The other project is untouched.
	for _, p := range st.Snapshot() {
		if p.Title == "B" && p.Status != model.StatusActive {
			t.Fatalf("unrelated project changed status: %+v", p)
		}
	}
}

func TestPanel_SkipsUnrenderableRow(t *testing.T) {
	st := store.New()
	st.Create("good", "aaaaa", 1)
	st.Create("bad", "aaaaa", 1)
	st.Create("fine", "aaaaa", 1)

	surface := &fakeSurface{}
	render := func(p model.Project, selected bool) (string, error) {
		if p.Title == "bad" {
			return "", fmt.Errorf("render: %w", ErrBadRecord)
		}
		return p.Title, nil
	}
	NewPanel(st, model.StatusActive, surface, render)

	if len(surface.rows) != 2 {
		t.Fatalf("rows = %v, want the two renderable projects", surface.rows)
	}
	if surface.rows[0] != "good" || surface.rows[1] != "fine" {
		t.Fatalf("unexpected rows: %v", surface.rows)
	}
}

func TestPanel_CursorTracksSlice(t *testing.T) {
	st := store.New()
	st.Create("one", "aaaaa", 1)
	id2 := st.Create("two", "aaaaa", 1)

	surface := &fakeSurface{}
	p := NewPanel(st, model.StatusActive, surface, plainRow)

	p.CursorDown()
	sel, ok := p.Selected()
	if !ok || sel.Title != "two" {
		t.Fatalf("selected = %+v, want two", sel)
	}

	// The selected project leaves the slice; the cursor clamps.
	st.Move(id2, model.StatusFinished)
	sel, ok = p.Selected()
	if !ok || sel.Title != "one" {
		t.Fatalf("selected after move = %+v, want one", sel)
	}

	p.CursorUp()
	if p.Len() != 1 {
		t.Fatalf("len = %d, want 1", p.Len())
	}
}

func TestDefaultRow_RefusesRecordWithoutID(t *testing.T) {
	if _, err := DefaultRow(model.Project{Title: "no id"}, false); err == nil {
		t.Fatalf("expected error for a record without an id")
	}
	row, err := DefaultRow(model.Project{ID: "x", Title: "ok", People: 2, Status: model.StatusActive}, false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(row, "ok") {
		t.Fatalf("row missing title: %q", row)
	}
}
