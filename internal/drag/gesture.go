package drag

import (
	"fmt"

	"github.com/idilsaglam/board/internal/model"
)

// State of one grab-and-drop gesture.
type State int

const (
	Idle State = iota
	Dragging
	OverTarget
	Dropped
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case OverTarget:
		return "over-target"
	case Dropped:
		return "dropped"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// IsTerminal reports whether the gesture has finished (successfully or not).
func (s State) IsTerminal() bool {
	return s == Dropped || s == Cancelled
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case Idle:
		return to == Dragging
	case Dragging:
		return to == OverTarget || to == Cancelled
	case OverTarget:
		return to == Dragging || to == Dropped || to == Cancelled
	case Dropped, Cancelled:
		return to == Idle
	default:
		return false
	}
}

// Gesture tracks one drag from grab to drop or cancel. The platform delivers
// one gesture at a time, so a single Gesture value per board is enough; it is
// reset to Idle between drags.
type Gesture struct {
	state   State
	payload Payload
}

func NewGesture() *Gesture {
	return &Gesture{state: Idle}
}

// State reports where the gesture currently is in its lifecycle.
func (g *Gesture) State() State { return g.state }

// Payload returns the identity the gesture carries. Zero value until Start.
func (g *Gesture) Payload() Payload { return g.payload }

// transition performs a validated step; a disallowed step reports an error
// and leaves the gesture unchanged.
func (g *Gesture) transition(to State) error {
	if !isAllowedTransition(g.state, to) {
		return fmt.Errorf("disallowed drag transition: %s -> %s", g.state, to)
	}
	g.state = to
	return nil
}

// Start begins a drag on the given project: the item's identity is encoded
// into the carried payload under the text media type.
func (g *Gesture) Start(p model.Project) (Payload, error) {
	pl := Payload{MediaType: MediaTypeText, Data: p.ID, Effect: EffectMove}
	if err := g.StartPayload(pl); err != nil {
		return Payload{}, err
	}
	return pl, nil
}

// StartPayload begins a drag carrying an arbitrary payload, e.g. content
// dragged in from outside the board. Targets decide compatibility on entry.
func (g *Gesture) StartPayload(p Payload) error {
	if err := g.transition(Dragging); err != nil {
		return err
	}
	g.payload = p
	return nil
}

// Cancel abandons the gesture with no side effect on the store.
func (g *Gesture) Cancel() error {
	return g.transition(Cancelled)
}

// End is the source-side hook after the platform reports the gesture over.
// Purely observational: it never mutates the store. A gesture still in
// flight (no drop happened) is cancelled; either way the gesture returns
// to Idle, ready for the next grab.
func (g *Gesture) End() {
	if g.state == Dragging || g.state == OverTarget {
		g.state = Cancelled
	}
	if g.state.IsTerminal() {
		g.state = Idle
		g.payload = Payload{}
	}
}

// Mover is the one store operation the protocol needs. *store.Store
// satisfies it.
type Mover interface {
	Move(id string, to model.Status)
}

// Affordance toggles the visual droppable cue on a panel. *board.Panel
// satisfies it.
type Affordance interface {
	SetDroppable(on bool)
}

// Target is a drop destination bound to one board column. Dropping on it
// recategorizes the carried project to the target's status; that call is the
// only point where the protocol mutates shared state.
type Target struct {
	status     model.Status
	mover      Mover
	affordance Affordance
}

func NewTarget(status model.Status, m Mover, a Affordance) *Target {
	return &Target{status: status, mover: m, affordance: a}
}

// Status reports which column this target recategorizes into.
func (t *Target) Status() model.Status { return t.status }

// Enter is the drag-over hook. A payload with the expected media type is
// accepted: the droppable affordance goes on and the gesture moves over this
// target. Anything else is rejected implicitly.
func (t *Target) Enter(g *Gesture) bool {
	if !g.Payload().Compatible() {
		return false
	}
	if err := g.transition(OverTarget); err != nil {
		return false
	}
	t.affordance.SetDroppable(true)
	return true
}

// Leave removes the affordance and puts the gesture back in flight. No store
// mutation happens here.
func (t *Target) Leave(g *Gesture) {
	t.affordance.SetDroppable(false)
	// Leaving without having entered is harmless; ignore the invalid step.
	_ = g.transition(Dragging)
}

// Drop extracts the carried identity and recategorizes it into this column.
// A forced drop with an incompatible or never-accepted payload does nothing.
// A stale id or a drop onto the item's current column is absorbed by the
// store's no-op rules; drop never assumes it implies change.
func (t *Target) Drop(g *Gesture) bool {
	defer t.affordance.SetDroppable(false)
	p := g.Payload()
	if !p.Compatible() {
		return false
	}
	if err := g.transition(Dropped); err != nil {
		return false
	}
	t.mover.Move(p.Data, t.status)
	return true
}
