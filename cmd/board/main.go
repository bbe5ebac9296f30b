package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/board/internal/cli"
	"github.com/idilsaglam/board/internal/config"
	"github.com/idilsaglam/board/internal/store"
	"github.com/idilsaglam/board/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "board.yaml", "path to config file")
	theme := flag.String("theme", "", "theme override: classic, neon, mono")
	flat := flag.Bool("flat", false, "list in insertion order instead of columns")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetTheme(cfg.Theme)

	// The one store for this process; every view gets this handle.
	st := store.New()

	code := cli.Run(st, cfg, flag.Args(), cli.Options{
		Flat: *flat,
	})
	os.Exit(code)
}
