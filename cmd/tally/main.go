package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/drake/tally/config"
	"github.com/drake/tally/debug"
	"github.com/drake/tally/internal/logger"
	"github.com/drake/tally/scenario"
	"github.com/drake/tally/session"
	"github.com/drake/tally/ui"
	"github.com/drake/tally/ui/tui"
)

var version = "dev"

func main() {
	// Parse flags
	simpleUI := flag.Bool("simple", false, "Use line-oriented console UI instead of TUI")
	check := flag.String("check", "", "Run the scenarios in an HCL file and exit")
	configPath := flag.String("config", "", "Config file (default <config dir>/config.toml)")
	noScripts := flag.Bool("no-scripts", false, "Do not load init.lua or script arguments")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("tally", version)
		return
	}

	if *check != "" {
		os.Exit(runCheck(*check))
	}

	path := *configPath
	if path == "" {
		path = config.File()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so console logging only in simple mode
	log := logger.Setup(&cfg.Log, *simpleUI)
	defer logger.Stop()

	// Select UI mode
	var u ui.UI
	if *simpleUI {
		u = ui.NewConsoleUI()
	} else {
		u = tui.NewBubbleTeaUI(tui.Options{
			AltScreen: cfg.UI.AltScreen,
			Mouse:     cfg.UI.Mouse,
			Theme:     cfg.UI.Theme,
			KeyMap:    cfg.KeyMap(),
		})
	}

	sessCfg := session.Config{
		KeyMap:      cfg.KeyMap(),
		TapeSize:    cfg.UI.TapeSize,
		LatchEquals: cfg.Engine.LatchEquals,
		InitFile:    config.InitFile(),
		UserScripts: flag.Args(),
		NoScripts:   *noScripts,
	}
	if cfg.Watch.Enabled && !*noScripts {
		sessCfg.WatchDir = config.Dir()
	}

	mode := "tui"
	if *simpleUI {
		mode = "console"
	}
	log.Info().Str("config", path).Str("ui", mode).Msg("Starting tally")

	sess := session.New(u, sessCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, sess).Start()

	// Block on UI
	if err := sess.Run(); err != nil {
		log.Warn().Err(err).Msg("UI error")
		fmt.Fprintln(os.Stderr, "UI error:", err)
		logger.Stop()
		os.Exit(1)
	}
}

// runCheck prints a PASS/FAIL line per scenario and returns the exit code.
func runCheck(path string) int {
	scenarios, err := scenario.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	results := scenario.RunAll(scenarios)
	for _, r := range results {
		fmt.Println(r)
	}

	failed := scenario.Failed(results)
	fmt.Printf("%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}
