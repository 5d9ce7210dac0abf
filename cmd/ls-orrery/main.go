// Command ls-orrery is a terminal orrery: an interactive 3D view of the
// solar system with a gesture-driven orbital camera.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/body"
	"github.com/litescript/ls-orrery/internal/clock"
	"github.com/litescript/ls-orrery/internal/journey"
	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/orbit"
	"github.com/litescript/ls-orrery/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	atDate        string
)

const (
	defaultFPS = 30
	minFPS     = 5
	maxFPS     = 60
)

func main() {
	fps := flag.Int("fps", defaultFPS, "Animation frames per second")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	skipAnim := flag.Bool("skip-anim", false, "Resolve camera animations instantly")
	fromBody := flag.String("from", "", "Journey departure body (default Earth)")
	toBody := flag.String("to", "", "Initial journey destination (default Moon)")
	timeOffset := flag.Duration("time-offset", 0, "Shift simulation time from wall clock (e.g., 720h)")
	flag.BoolVar(&summaryMode, "summary", false, "Print ephemeris summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat summary at interval (e.g., 30s)")
	flag.StringVar(&atDate, "at", "", "Summary date (RFC3339, default now)")
	flag.Parse()

	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	clk := clock.NewSystem()
	clk.SetOffset(*timeOffset)

	registry := body.Catalog()
	journeys := journey.NewManager(journey.DefaultConfig())

	if summaryMode {
		runHeadless(ctx, registry, clk, logger)
		return
	}

	model := ui.New(registry, clk, journeys, logger, ui.Options{
		FPS:      *fps,
		SkipAnim: *skipAnim,
		From:     *fromBody,
		To:       *toBody,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless prints the ephemeris summary once, or repeatedly in watch
// mode.
func runHeadless(ctx context.Context, registry *body.Registry, clk *clock.System, logger *logging.Logger) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	at := func() time.Time { return clk.Now() }
	if atDate != "" {
		parsed, err := time.Parse(time.RFC3339, atDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -at date: %v\n", err)
			os.Exit(1)
		}
		at = func() time.Time { return parsed }
	}

	if watchInterval == 0 {
		writeSummary(registry, at())
		return
	}

	if !isTTY {
		logger.Warn("watch mode without a TTY")
	}

	writeSummary(registry, at())
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			writeSummary(registry, at())
		}
	}
}

// writeSummary prints one heliocentric position line per body.
func writeSummary(registry *body.Registry, t time.Time) {
	fmt.Printf("Ephemeris at %s\n", t.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Printf("%-10s %-7s %13s %13s %13s %12s\n", "BODY", "KIND", "X (AU)", "Y (AU)", "Z (AU)", "SUN DIST AU")

	for _, name := range registry.Names() {
		b, ok := registry.Get(name)
		if !ok {
			continue
		}
		pos, err := registry.PositionKm(name, t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", name, err)
			continue
		}
		x := pos.X / orbit.KmPerAU
		y := pos.Y / orbit.KmPerAU
		z := pos.Z / orbit.KmPerAU
		fmt.Printf("%-10s %-7s %13.6f %13.6f %13.6f %12.6f\n",
			name, b.Kind, x, y, z, math.Sqrt(x*x+y*y+z*z))
	}
}
