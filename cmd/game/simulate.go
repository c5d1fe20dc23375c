package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"zombie-arena/internal/clock"
	"zombie-arena/internal/engine"
)

var (
	simFrames int
	simStep   time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long:  `Run a headless game on a simulated clock with the autopilot playing, then print a summary. Useful for checking tuning and wave files.`,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simFrames, "frames", 3600, "maximum number of frames to run")
	simulateCmd.Flags().DurationVar(&simStep, "step", 16*time.Millisecond, "simulated time per frame")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, patterns, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if simFrames <= 0 || simStep <= 0 {
		return fmt.Errorf("frames and step must be positive")
	}

	mock := clock.NewMockTimeProvider(time.Now())
	loop, err := engine.NewLoop(tuning, patterns, mock)
	if err != nil {
		return err
	}
	defer loop.Close()

	sum := engine.Simulate(loop, engine.NewAutopilot(), mock, simFrames, simStep)
	fmt.Fprintln(cmd.OutOrStdout(), sum.String())
	return nil
}
