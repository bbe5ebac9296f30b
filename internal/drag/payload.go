// Package drag implements the grab-and-drop gesture that moves a project's
// identity from a source panel to a target panel. The gesture is a small
// validated state machine; the payload is a tagged single-value channel so
// only compatible targets react to it.
package drag

// Payload tagging. Targets check MediaType before accepting anything; the
// effect is always "move" semantics (the item leaves its source column).
const (
	MediaTypeText = "text/plain"
	EffectMove    = "move"
)

// Payload carries an opaque project identity across the gesture. Data is the
// project id and nothing else; receivers validate the tag before use.
type Payload struct {
	MediaType string
	Data      string
	Effect    string
}

// Compatible reports whether a target should react to this payload at all.
func (p Payload) Compatible() bool {
	return p.MediaType == MediaTypeText
}
