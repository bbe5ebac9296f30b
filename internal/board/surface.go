package board

// Surface is what a panel needs from the presentation layer. The TUI backs it
// with a bubbletea-rendered box; the CLI's static listing and the tests back
// it with plain buffers. Panels never build markup or escape codes themselves.
type Surface interface {
	// SetTitle replaces the panel header text.
	SetTitle(title string)
	// SetRows replaces the panel body with the given rendered rows, in order.
	SetRows(rows []string)
	// SetDroppable toggles the visual affordance shown while a compatible
	// drag hovers over the panel.
	SetDroppable(on bool)
}
