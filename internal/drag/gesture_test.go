package drag

import (
	"testing"

	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/store"
)

type moveCall struct {
	id string
	to model.Status
}

type fakeMover struct {
	calls []moveCall
}

func (f *fakeMover) Move(id string, to model.Status) {
	f.calls = append(f.calls, moveCall{id: id, to: to})
}

type fakeAffordance struct {
	on      bool
	applied int
	removed int
}

func (f *fakeAffordance) SetDroppable(on bool) {
	f.on = on
	if on {
		f.applied++
	} else {
		f.removed++
	}
}

func TestGesture_DropRecategorizesOnce(t *testing.T) {
	mover := &fakeMover{}
	aff := &fakeAffordance{}
	target := NewTarget(model.StatusFinished, mover, aff)

	g := NewGesture()
	p := model.Project{ID: "p1", Title: "Build API", Status: model.StatusActive}

	payload, err := g.Start(p)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if payload.MediaType != MediaTypeText || payload.Data != "p1" || payload.Effect != EffectMove {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if g.State() != Dragging {
		t.Fatalf("state = %s, want %s", g.State(), Dragging)
	}

	if !target.Enter(g) {
		t.Fatalf("target rejected a compatible payload")
	}
	if !aff.on {
		t.Fatalf("droppable affordance not applied on enter")
	}
	if g.State() != OverTarget {
		t.Fatalf("state = %s, want %s", g.State(), OverTarget)
	}

	// Leaving removes the affordance without touching the store.
	target.Leave(g)
	if aff.on {
		t.Fatalf("affordance still on after leave")
	}
	if len(mover.calls) != 0 {
		t.Fatalf("leave mutated the store: %+v", mover.calls)
	}
	if g.State() != Dragging {
		t.Fatalf("state after leave = %s, want %s", g.State(), Dragging)
	}

	target.Enter(g)
	if !target.Drop(g) {
		t.Fatalf("drop refused")
	}
	if aff.on {
		t.Fatalf("affordance still on after drop")
	}
	if len(mover.calls) != 1 || mover.calls[0] != (moveCall{id: "p1", to: model.StatusFinished}) {
		t.Fatalf("unexpected move calls: %+v", mover.calls)
	}

	g.End()
	if g.State() != Idle {
		t.Fatalf("state after end = %s, want %s", g.State(), Idle)
	}
	if g.Payload() != (Payload{}) {
		t.Fatalf("payload not cleared after end: %+v", g.Payload())
	}
}

func TestGesture_CancelHasNoSideEffect(t *testing.T) {
	mover := &fakeMover{}
	aff := &fakeAffordance{}
	target := NewTarget(model.StatusFinished, mover, aff)

	g := NewGesture()
	if _, err := g.Start(model.Project{ID: "p1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	target.Enter(g)
	target.Leave(g)

	if err := g.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if g.State() != Cancelled {
		t.Fatalf("state = %s, want %s", g.State(), Cancelled)
	}
	g.End()
	if g.State() != Idle {
		t.Fatalf("state after end = %s, want %s", g.State(), Idle)
	}
	if len(mover.calls) != 0 {
		t.Fatalf("cancelled gesture mutated the store: %+v", mover.calls)
	}
}

func TestGesture_EndCancelsAbandonedDrag(t *testing.T) {
	g := NewGesture()
	if _, err := g.Start(model.Project{ID: "p1"}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Platform reported the gesture over without a drop.
	g.End()
	if g.State() != Idle {
		t.Fatalf("state = %s, want %s", g.State(), Idle)
	}

	// The gesture is reusable for the next grab.
	if _, err := g.Start(model.Project{ID: "p2"}); err != nil {
		t.Fatalf("restart after end: %v", err)
	}
}

func TestTarget_RejectsForeignPayload(t *testing.T) {
	mover := &fakeMover{}
	aff := &fakeAffordance{}
	target := NewTarget(model.StatusFinished, mover, aff)

	g := NewGesture()
	if err := g.StartPayload(Payload{MediaType: "application/json", Data: `{"id":"p1"}`}); err != nil {
		t.Fatalf("start: %v", err)
	}

	if target.Enter(g) {
		t.Fatalf("target accepted a foreign payload")
	}
	if aff.applied != 0 {
		t.Fatalf("affordance applied for a foreign payload")
	}

	// Forced drop without acceptance: nothing happens.
	if target.Drop(g) {
		t.Fatalf("forced drop succeeded on a foreign payload")
	}
	if len(mover.calls) != 0 {
		t.Fatalf("foreign payload mutated the store: %+v", mover.calls)
	}
}

func TestTarget_DropWithoutEnterIsRefused(t *testing.T) {
	mover := &fakeMover{}
	target := NewTarget(model.StatusFinished, mover, &fakeAffordance{})

	g := NewGesture()
	if _, err := g.Start(model.Project{ID: "p1"}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Still Dragging, never OverTarget: the transition is disallowed.
	if target.Drop(g) {
		t.Fatalf("drop succeeded without a preceding enter")
	}
	if len(mover.calls) != 0 {
		t.Fatalf("unexpected move calls: %+v", mover.calls)
	}
}

func TestTransition_DisallowedSteps(t *testing.T) {
	g := NewGesture()

	if err := g.Cancel(); err == nil {
		t.Fatalf("cancel from idle should error")
	}
	if _, err := g.Start(model.Project{ID: "p1"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := g.Start(model.Project{ID: "p2"}); err == nil {
		t.Fatalf("second start mid-drag should error")
	}
}

func TestDrop_SameColumnIsAbsorbedByStore(t *testing.T) {
	st := store.New()
	st.Create("Build API", "Design and implement service", 3)

	notified := 0
	st.Subscribe(func([]model.Project) { notified++ })

	aff := &fakeAffordance{}
	target := NewTarget(model.StatusActive, st, aff)

	g := NewGesture()
	p := st.Snapshot()[0]
	if _, err := g.Start(p); err != nil {
		t.Fatalf("start: %v", err)
	}
	target.Enter(g)
	// Drop fires, but drop does not imply change: the store absorbs it.
	if !target.Drop(g) {
		t.Fatalf("drop refused")
	}
	g.End()

	if notified != 0 {
		t.Fatalf("same-column drop fired %d notifications, want 0", notified)
	}
	if got := st.Snapshot()[0].Status; got != model.StatusActive {
		t.Fatalf("status = %s, want %s", got, model.StatusActive)
	}
}

func TestDrop_StaleIdentityIsAbsorbedByStore(t *testing.T) {
	st := store.New()
	st.Create("other", "aaaaa", 1)

	notified := 0
	st.Subscribe(func([]model.Project) { notified++ })

	target := NewTarget(model.StatusFinished, st, &fakeAffordance{})

	g := NewGesture()
	// Payload references an id the store never had.
	if _, err := g.Start(model.Project{ID: "gone"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	target.Enter(g)
	target.Drop(g)
	g.End()

	if notified != 0 {
		t.Fatalf("stale drop fired %d notifications, want 0", notified)
	}
	if got := st.Snapshot()[0].Status; got != model.StatusActive {
		t.Fatalf("unrelated project changed: %s", got)
	}
}
