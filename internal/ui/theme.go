package ui

import "strings"

// Theme bundles the symbols the renderers pull from. Colors live in the
// lipgloss styles (styles.go); the theme only swaps glyphs so the mono
// variant stays usable on dumb terminals.
type Theme struct {
	SymActive, SymFinished string
	SymGrab                string
	CornerTL, CornerTR     string
	CornerBL, CornerBR     string
	H, V                   string
}

var current Theme

func init() {
	SetTheme("classic")
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			SymActive: "◉", SymFinished: "◼",
			SymGrab:  "✥",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		current = Theme{
			SymActive: "*", SymFinished: "x",
			SymGrab:  ">",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		current = Theme{
			SymActive: "•", SymFinished: "✔",
			SymGrab:  "✥",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
