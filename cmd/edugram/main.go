package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vanderheijden86/edugram/internal/store"
	"github.com/vanderheijden86/edugram/pkg/config"
	"github.com/vanderheijden86/edugram/pkg/export"
	"github.com/vanderheijden86/edugram/pkg/stats"
	"github.com/vanderheijden86/edugram/pkg/ui"
	"github.com/vanderheijden86/edugram/pkg/version"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	storePath := flag.String("store", "", "Profile database path (default: XDG data dir)")
	resetFlag := flag.Bool("reset", false, "Delete the stored profile and exit")
	exportStats := flag.String("export-stats", "", "Write progress charts to DIR and exit (no TUI)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: edugram [options]")
		fmt.Println("\nA TUI for short-form learning: reels, flashcards and study groups.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("edugram %s\n", version.Version)
		os.Exit(0)
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue with defaults
		cfg = config.DefaultConfig()
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}

	st, err := store.Open(cfg.ResolvedStorePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *resetFlag {
		if err := st.ClearProfile(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Profile cleared.")
		os.Exit(0)
	}

	if *exportStats != "" {
		if err := exportCharts(st, *exportStats); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting progress charts: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Progress charts written to %s\n", *exportStats)
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "edugram is a TUI and needs a terminal; see --help for non-interactive commands")
		os.Exit(1)
	}

	m := ui.NewModel(cfg, st)
	defer m.Stop()

	if err := runTUIProgram(m); err != nil {
		fmt.Printf("Error running edugram: %v\n", err)
		os.Exit(1)
	}
}

// exportCharts renders the stored profile's progress without the TUI.
// Activity counters are per-session, so a cold export reports the
// baseline score and empty counters.
func exportCharts(st *store.Store, dir string) error {
	p, ok, err := st.LoadProfile()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("no profile stored; run edugram and sign up first")
	}

	tracker := stats.NewTracker()
	return export.WriteProgressCharts(dir, export.Summary{
		ProfileName:  p.Name,
		Score:        tracker.Score(),
		ReelsWatched: tracker.ReelsWatched(),
		CardsStudied: tracker.CardsStudied(),
		Accuracy:     tracker.Accuracy(),
	})
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set EDUGRAM_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("EDUGRAM_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
