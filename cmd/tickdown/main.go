package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tickdown/audio"
	"github.com/lixenwraith/tickdown/constants"
	"github.com/lixenwraith/tickdown/core"
	"github.com/lixenwraith/tickdown/counter"
	"github.com/lixenwraith/tickdown/engine"
	"github.com/lixenwraith/tickdown/events"
	"github.com/lixenwraith/tickdown/input"
	"github.com/lixenwraith/tickdown/render"
)

func main() {
	var duration int
	flag.IntVar(&duration, "duration", constants.DefaultDuration, "countdown duration in seconds")
	flag.IntVar(&duration, "d", constants.DefaultDuration, "countdown duration in seconds (shorthand)")
	flag.Parse()

	if duration < 0 {
		fmt.Fprintf(os.Stderr, "invalid duration %d: must be a non-negative number of seconds\n", duration)
		flag.Usage()
		os.Exit(2)
	}

	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetResetHook(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	alert, err := audio.NewEngine()
	if err != nil {
		// Non-fatal, the timer can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer alert.Close()

	remaining := counter.New(duration)
	merger := events.NewMerger(constants.EventBuffer)

	// Input source runs for the program lifetime; tick sources are
	// spawned by the loop, one per countdown.
	input.Start(screen, merger.Attach())

	loop := engine.NewLoop(remaining, merger, render.NewScreen(screen), constants.TickInterval)
	loop.SetAlerter(alert)

	if err := loop.Run(); err != nil {
		// Restore the terminal before reporting; os.Exit skips defers
		screen.Fini()
		fmt.Fprintf(os.Stderr, "tickdown: %v\n", err)
		os.Exit(1)
	}
}
