package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/board/internal/board"
	"github.com/idilsaglam/board/internal/config"
	"github.com/idilsaglam/board/internal/form"
	"github.com/idilsaglam/board/internal/model"
	"github.com/idilsaglam/board/internal/store"
	"github.com/idilsaglam/board/internal/tui"
	"github.com/idilsaglam/board/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Flat bool // list in insertion order instead of two columns
}

// Run dispatches subcommands against the process store and returns an exit
// code (0 ok, 1 error, 2 usage). The store is constructed once in main and
// threaded here; the board holds state for the session only.
func Run(st *store.Store, cfg config.Config, args []string, opt Options) int {
	if len(args) == 0 {
		args = []string{"board"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "board":
		return doBoard(st, cfg)

	case "ls":
		return doList(st, opt)

	case "add":
		return doAdd(st, cfg, a, opt)

	case "move":
		if len(a) != 2 {
			ui.Fail("usage: board move <index> <active|finished>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("move: not a number: " + a[0])
			return 2
		}
		status, err := model.ParseStatus(a[1])
		if err != nil {
			ui.Fail("move: " + err.Error())
			return 2
		}
		return doMove(st, n, status, opt)

	case "stats":
		return doStats(st)
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`board - a project board for your terminal

Usage:
  board [subcommand] [args]

Subcommands:
  board                            Open the interactive board (default)
  add [-people N] [-desc S] <title...>
                                   Add a project, then print the board
  ls                               Print the board
  move <index> <active|finished>   Move project at 1-based index
  stats                            Show board statistics
  help                             Show this help

Examples:
  board
  board add -people 3 -desc "Design and implement service" Build API
  board move 2 finished
`)
}

func doBoard(st *store.Store, cfg config.Config) int {
	if err := tui.Run(st, cfg); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// ---------------------------------------------------
// Static listing (non-TUI view binding)
// ---------------------------------------------------

// printSurface backs board.Surface for one-shot output. The droppable
// affordance has no meaning outside a live gesture, so it is ignored.
type printSurface struct {
	title string
	rows  []string
}

func (s *printSurface) SetTitle(title string) { s.title = title }
func (s *printSurface) SetRows(rows []string) { s.rows = rows }
func (s *printSurface) SetDroppable(bool)     {}

func (s *printSurface) lines() []string {
	out := []string{ui.TitleStyle.Render(s.title)}
	if len(s.rows) == 0 {
		return append(out, ui.MutedStyle.Render("(empty)"))
	}
	return append(out, s.rows...)
}

func doList(st *store.Store, opt Options) int {
	if opt.Flat {
		rows := make([]string, 0, st.Len())
		for _, p := range st.Snapshot() {
			row, err := board.DefaultRow(p, false)
			if err != nil {
				continue
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			rows = []string{ui.MutedStyle.Render("(empty)")}
		}
		fmt.Println(ui.Panel(rows))
		return 0
	}

	active := &printSurface{}
	finished := &printSurface{}
	ap := board.NewPanel(st, model.StatusActive, active, board.DefaultRow)
	fp := board.NewPanel(st, model.StatusFinished, finished, board.DefaultRow)
	defer ap.Detach()
	defer fp.Detach()

	fmt.Println(ui.Panel(active.lines()))
	fmt.Println(ui.Panel(finished.lines()))
	return 0
}

func doAdd(st *store.Store, cfg config.Config, args []string, opt Options) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	desc := fs.String("desc", "", "project description")
	people := fs.Int("people", cfg.MinPeople, "number of people assigned")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	title := strings.Join(fs.Args(), " ")

	intake := form.NewIntake(st, form.DefaultRules(cfg.MinPeople, cfg.MaxPeople))
	if _, err := intake.Submit(title, *desc, strconv.Itoa(*people)); err != nil {
		ui.Fail("add: " + err.Error())
		return 1
	}
	ui.OK("added")
	return doList(st, opt)
}

func doMove(st *store.Store, userIndex int, to model.Status, opt Options) int {
	snap := st.Snapshot()
	if userIndex < 1 || userIndex > len(snap) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(snap), userIndex))
		return 2
	}
	p := snap[userIndex-1]
	if p.Status == to {
		fmt.Println(ui.MutedStyle.Render("already " + string(to)))
		return 0
	}
	st.Move(p.ID, to)
	ui.OK("moved")
	return doList(st, opt)
}

func doStats(st *store.Store) int {
	snap := st.Snapshot()
	finished := 0
	for _, p := range snap {
		if p.Status == model.StatusFinished {
			finished++
		}
	}
	lines := []string{
		ui.TitleStyle.Render("Board stats"),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			ui.PendingStyle.Render("active"), len(snap)-finished,
			ui.SuccessStyle.Render("finished"), finished,
			ui.AccentStyle.Render("total"), len(snap),
		),
		ui.ProgressBar(finished, len(snap), 28),
	}
	fmt.Println(ui.Panel(lines))
	return 0
}
