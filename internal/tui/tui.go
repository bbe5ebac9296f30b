// Package tui is the interactive board: two panels side by side, an inline
// add form, and a grab-and-drop gesture for moving projects between columns.
// It is the concrete presentation surface behind board.Surface; every store
// mutation it causes goes through form intake or the drag protocol.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/board/internal/board"
	"github.com/idilsaglam/board/internal/config"
	"github.com/idilsaglam/board/internal/drag"
	"github.com/idilsaglam/board/internal/form"
	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/store"
	"github.com/idilsaglam/board/internal/ui"
)

// panelSurface backs board.Surface with plain state that View composes into
// a bordered column.
type panelSurface struct {
	title     string
	rows      []string
	droppable bool
}

func (s *panelSurface) SetTitle(title string) { s.title = title }
func (s *panelSurface) SetRows(rows []string) { s.rows = rows }
func (s *panelSurface) SetDroppable(on bool)  { s.droppable = on }

type keyMap struct {
	Focus  key.Binding
	Up     key.Binding
	Down   key.Binding
	Grab   key.Binding
	Add    key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Focus:  key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "switch panel")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Grab:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "grab/drop")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model implements tea.Model over a shared store handle.
type Model struct {
	store *store.Store
	cfg   config.Config
	keys  keyMap

	panels   map[model.Status]*board.Panel
	surfaces map[model.Status]*panelSurface
	targets  map[model.Status]*drag.Target
	gesture  *drag.Gesture

	intake *form.Intake

	focus model.Status

	// Inline add form
	adding   bool
	inputs   []textinput.Model
	focusIdx int
	formErr  string

	width, height int
}

// New wires panels, drag targets, and the intake form to the given store.
// The store handle comes in from main; the TUI never constructs its own.
func New(st *store.Store, cfg config.Config) Model {
	surfaces := map[model.Status]*panelSurface{
		model.StatusActive:   {},
		model.StatusFinished: {},
	}
	panels := map[model.Status]*board.Panel{
		model.StatusActive:   board.NewPanel(st, model.StatusActive, surfaces[model.StatusActive], board.DefaultRow),
		model.StatusFinished: board.NewPanel(st, model.StatusFinished, surfaces[model.StatusFinished], board.DefaultRow),
	}
	targets := map[model.Status]*drag.Target{
		model.StatusActive:   drag.NewTarget(model.StatusActive, st, panels[model.StatusActive]),
		model.StatusFinished: drag.NewTarget(model.StatusFinished, st, panels[model.StatusFinished]),
	}

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = "> "
		inputs[i].CharLimit = 200
	}
	inputs[0].Placeholder = "Project title..."
	inputs[1].Placeholder = "Short description..."
	inputs[2].Placeholder = fmt.Sprintf("People (%d-%d)...", cfg.MinPeople, cfg.MaxPeople)
	inputs[2].CharLimit = 4

	return Model{
		store:    st,
		cfg:      cfg,
		keys:     defaultKeys(),
		panels:   panels,
		surfaces: surfaces,
		targets:  targets,
		gesture:  drag.NewGesture(),
		intake:   form.NewIntake(st, form.DefaultRules(cfg.MinPeople, cfg.MaxPeople)),
		focus:    model.StatusActive,
		inputs:   inputs,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateForm(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) dragging() bool {
	s := m.gesture.State()
	return s == drag.Dragging || s == drag.OverTarget
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.dragging() {
			m.targets[m.focus].Leave(m.gesture)
			_ = m.gesture.Cancel()
			m.gesture.End()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		other := m.focus.Other()
		if m.dragging() {
			// Crossing a panel boundary mid-drag is leave + enter.
			m.targets[m.focus].Leave(m.gesture)
			m.targets[other].Enter(m.gesture)
		}
		m.focus = other
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if !m.dragging() {
			m.panels[m.focus].CursorUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if !m.dragging() {
			m.panels[m.focus].CursorDown()
		}
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		if m.dragging() {
			m.targets[m.focus].Drop(m.gesture)
			m.gesture.End()
			return m, nil
		}
		if pr, ok := m.panels[m.focus].Selected(); ok {
			if _, err := m.gesture.Start(pr); err == nil {
				// The source panel is itself a drop zone; the gesture
				// begins hovering over it.
				m.targets[m.focus].Enter(m.gesture)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.formErr = ""
		m.focusIdx = 0
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		m.inputs[0].Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.formErr = ""
		return m, nil

	case "enter":
		if m.focusIdx < len(m.inputs)-1 {
			return m.focusInput(m.focusIdx + 1), nil
		}
		_, err := m.intake.Submit(
			m.inputs[0].Value(),
			m.inputs[1].Value(),
			m.inputs[2].Value(),
		)
		if err != nil {
			// Inputs stay as typed so the user can correct them.
			m.formErr = err.Error()
			return m, nil
		}
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		m.adding = false
		m.formErr = ""
		return m, nil

	case "tab", "down":
		return m.focusInput((m.focusIdx + 1) % len(m.inputs)), nil

	case "shift+tab", "up":
		return m.focusInput((m.focusIdx + len(m.inputs) - 1) % len(m.inputs)), nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m Model) focusInput(idx int) Model {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	m.inputs[m.focusIdx].Focus()
	return m
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}

	header := m.headerLine()

	panelWidth := (w - 6) / 2
	if panelWidth < 20 {
		panelWidth = 20
	}
	panelHeight := h - 7
	if m.adding {
		panelHeight -= 6
	}
	if panelHeight < 3 {
		panelHeight = 3
	}

	left := m.renderPanel(model.StatusActive, panelWidth, panelHeight)
	right := m.renderPanel(model.StatusFinished, panelWidth, panelHeight)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	help := ui.HelpStyle.Render(m.helpLine())

	parts := []string{header, row, help}
	if m.adding {
		parts = append(parts, m.renderForm())
	}
	return strings.Join(parts, "\n")
}

func (m Model) headerLine() string {
	snap := m.store.Snapshot()
	finished := 0
	for _, p := range snap {
		if p.Status == model.StatusFinished {
			finished++
		}
	}
	line := fmt.Sprintf("%s   %s   %s %d",
		ui.TitleStyle.Render("Project Board"),
		ui.ProgressBar(finished, len(snap), 24),
		ui.AccentStyle.Render("Total"), len(snap),
	)
	if m.dragging() {
		if title, ok := m.grabbedTitle(); ok {
			line += "   " + ui.GrabbedStyle.Render(ui.Current().SymGrab+" "+title)
		}
	}
	return line
}

// grabbedTitle resolves the carried payload id against the latest snapshot.
func (m Model) grabbedTitle() (string, bool) {
	id := m.gesture.Payload().Data
	for _, p := range m.store.Snapshot() {
		if p.ID == id {
			return p.Title, true
		}
	}
	return "", false
}

func (m Model) renderPanel(status model.Status, w, h int) string {
	s := m.surfaces[status]

	style := ui.PanelBorder
	if status == m.focus {
		style = ui.FocusedPanelBorder
	}
	if s.droppable {
		style = ui.DroppableBorder
	}

	body := strings.Join(s.rows, "\n")
	if len(s.rows) == 0 {
		body = ui.MutedStyle.Render("(empty)")
	}
	content := ui.TitleStyle.Render(s.title) + "\n" + body
	return style.Width(w).Height(h).Render(content)
}

func (m Model) helpLine() string {
	k := m.keys
	binds := []key.Binding{k.Focus, k.Up, k.Down, k.Grab, k.Add, k.Cancel, k.Quit}
	parts := make([]string, 0, len(binds))
	for _, b := range binds {
		hp := b.Help()
		parts = append(parts, hp.Key+" "+hp.Desc)
	}
	return strings.Join(parts, "  •  ")
}

func (m Model) renderForm() string {
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	title := "Add project"
	if m.formErr != "" {
		title += " — " + ui.ErrorStyle.Render(m.formErr)
	}
	lines := []string{title}
	for i := range m.inputs {
		lines = append(lines, m.inputs[i].View())
	}
	return bar.Render(strings.Join(lines, "\n"))
}

// Run starts the interactive board over the given store and blocks until the
// user quits.
func Run(st *store.Store, cfg config.Config) error {
	p := tea.NewProgram(New(st, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
