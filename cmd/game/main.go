// cmd/game/main.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"zombie-arena/internal/config"
	"zombie-arena/internal/defs"
)

var (
	seed       int64
	configPath string
	wavesPath  string
	waves      int
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "zombie-arena",
	Short: "Top-down wave survival shooter",
	Long: `Zombie Arena: survive waves of zombies in a walled arena.
Without a subcommand the game opens in a window.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&seed, "seed", 0, "PRNG seed, 0 seeds from the clock")
	flags.StringVar(&configPath, "config", "", "JSON tuning file")
	flags.StringVar(&wavesPath, "waves-file", "", "JSON wave definitions file")
	flags.IntVar(&waves, "waves", 0, "campaign length in waves (overrides the tuning file)")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging installs the default slog handler. fallback is used when no
// log file is given; the returned func closes the file.
func setupLogging(fallback io.Writer) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	out, closeFn := fallback, func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// loadSettings merges defaults, the tuning file and the flags.
func loadSettings(cmd *cobra.Command) (config.Tuning, map[int]defs.WaveDefinition, error) {
	tuning := config.Default()
	if configPath != "" {
		var err error
		if tuning, err = config.Load(configPath); err != nil {
			return tuning, nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		tuning.Seed = seed
	}
	if waves > 0 {
		tuning.Waves = waves
	}
	if err := tuning.Validate(); err != nil {
		return tuning, nil, fmt.Errorf("invalid settings: %w", err)
	}

	var patterns map[int]defs.WaveDefinition
	if wavesPath != "" {
		var err error
		if patterns, err = defs.LoadWaveDefinitions(wavesPath); err != nil {
			return tuning, nil, err
		}
	}
	return tuning, patterns, nil
}
