package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/trytobebee/snakecycle/pkg/config"
	"github.com/trytobebee/snakecycle/pkg/game"
	"github.com/trytobebee/snakecycle/pkg/input"
	"github.com/trytobebee/snakecycle/pkg/render"
	"github.com/trytobebee/snakecycle/pkg/scores"
	"github.com/trytobebee/snakecycle/pkg/term"
)

func main() {
	configPath := flag.String("config", "", "path to an INI config file")
	record := flag.Bool("record", false, "record the session to a JSONL file")
	scoresDB := flag.String("scores", "", "SQLite file for persistent high scores")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *scoresDB != "" {
		cfg.ScoresDB = *scoresDB
	}

	store := openStore(cfg)
	defer store.Close()
	high, err := store.Load()
	if err != nil {
		log.Printf("warning: failed to load high score: %v", err)
	}

	handler := input.NewHandler()
	if err := handler.Start(); err != nil {
		log.Fatalf("failed to open keyboard: %v", err)
	}
	screen := term.NewANSI(os.Stdout)

	// The terminal must come back in a usable state on every exit path:
	// normal quit, fatal error after this point, and signals.
	var once sync.Once
	release := func() {
		once.Do(func() {
			handler.Stop()
			screen.Reset()
		})
	}
	defer release()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		release()
		os.Exit(1)
	}()

	g := game.NewGame(cfg.Width, cfg.Height, high)
	g.Autopilot = cfg.Autopilot

	var rec *game.Recorder
	if *record {
		rec, err = game.NewRecorder(cfg.RecordDir, fmt.Sprintf("%d", os.Getpid()))
		if err != nil {
			release()
			log.Fatalf("failed to start recorder: %v", err)
		}
		defer rec.Close()
	}

	board := render.NewBoard(screen, cfg.Width, cfg.Height)

	render.ShowWelcome(screen)
	g.Apply(input.Map(handler.Wait()))
	screen.Clear()
	screen.HideCursor()

	var step int64
	for g.State() != game.StateTerminated {
		// One key per tick, never blocking: a missing keypress must not
		// stall the cadence.
		if ev, ok := handler.Poll(); ok {
			g.Apply(input.Map(ev))
		}

		g.Update()
		board.Render(g)

		if rec != nil {
			rec.Record(game.StepRecord{Step: step, State: g.TakeSnapshot()})
			step++
		}

		switch g.State() {
		case game.StateGameOver:
			g.Apply(input.Map(handler.Wait()))
			if g.State() == game.StatePlaying {
				screen.Clear()
				board.ResetDiffState()
			}
		case game.StatePaused:
			time.Sleep(g.PausedInterval())
		case game.StatePlaying:
			time.Sleep(g.Interval())
		}
	}

	if err := store.Save(g.HighScore); err != nil {
		log.Printf("warning: failed to save high score: %v", err)
	}

	render.ShowGoodbye(screen, g.Score, g.HighScore)
	release()
	fmt.Println()
}

// openStore picks the score backend: SQLite when configured, otherwise
// in-memory. A broken database degrades to memory, the game itself
// does not need persistence to run.
func openStore(cfg config.Config) scores.Store {
	if cfg.ScoresDB == "" {
		return scores.NewMemoryStore()
	}
	s, err := scores.OpenSQLite(cfg.ScoresDB)
	if err != nil {
		log.Printf("warning: %v, falling back to in-memory scores", err)
		return scores.NewMemoryStore()
	}
	return s
}
