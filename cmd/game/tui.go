package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"zombie-arena/internal/clock"
	"zombie-arena/internal/engine"
	"zombie-arena/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long:  `Play in the terminal: WASD or arrows to move, mouse or space to fire, R to reload, Enter to pause or confirm, 1-6 to pick upgrades, Esc to quit.`,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// stderr belongs to the screen; logs go to --log-file or nowhere.
	closeLog, err := setupLogging(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, patterns, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	provider := clock.NewMonotonicTimeProvider()
	loop, err := engine.NewLoop(tuning, patterns, provider)
	if err != nil {
		return err
	}
	defer loop.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	term, err := tui.NewTerminal(screen, provider)
	if err != nil {
		return err
	}
	defer term.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx, term, term); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
