package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ardanlabs/connect-four/cmd/connect/board"
	"github.com/ardanlabs/connect-four/cmd/connect/config"
	"github.com/ardanlabs/connect-four/cmd/connect/game"
	"github.com/ardanlabs/connect-four/cmd/connect/speech"
	"github.com/ardanlabs/connect-four/foundation/logger"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {

	// -------------------------------------------------------------------------
	// Load the configuration.

	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// -------------------------------------------------------------------------
	// Construct the logger, the screen belongs to the game.

	session := logger.NewSession()

	lg, closeLog, err := logger.New(cfg.LogFile, session, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	lg.Info().
		Dur("notice", cfg.NoticeDuration).
		Bool("sound", cfg.Sound).
		Str("snapshots", cfg.SnapshotDir).
		Msg("startup")

	// -------------------------------------------------------------------------
	// Create the game and the screen.

	g := game.New(lg, game.WithNoticeDuration(cfg.NoticeDuration))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}

	b, err := board.New(board.Config{
		Log:         lg,
		Screen:      screen,
		Game:        g,
		Announcer:   speech.New(lg, cfg.Sound),
		SnapshotDir: cfg.SnapshotDir,
		SessionID:   session,
	})
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	// -------------------------------------------------------------------------
	// Start handling board input

	<-b.Run()

	lg.Info().Interface("score", g.Score()).Msg("shutdown")

	return nil
}
