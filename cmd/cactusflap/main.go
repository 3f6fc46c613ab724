// cactusflap is a Flappy-Bird style game with cacti, played in the terminal,
// in a native window or over SSH.
//
// Usage:
//
//	cactusflap play          - Play in the terminal
//	cactusflap window        - Play in a native window
//	cactusflap serve         - Start SSH server for remote play
//	cactusflap scores        - Show high scores
//	cactusflap snapshot      - Let the autopilot play and save a PNG
//	cactusflap config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.cactusflap/scores.db)
//	--player <name>       - Name stored with scores (default: login name)
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/flappy"
	"github.com/vovakirdan/cactusflap/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagLogFile  string
	flagLogLevel string

	// Game flags shared by play, window, serve and snapshot
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cactusflap",
	Short: "Cactus Flap - flap between the cacti",
	Long: `Cactus Flap is a Flappy-Bird style game. Flap through the gaps
between cacti; every cactus passed scores a point.

Available commands:
  play      - Play in the terminal
  window    - Play in a native window
  serve     - Start SSH server for remote play
  scores    - View high scores
  snapshot  - Run the autopilot headless and save a PNG
  config    - Print the default YAML configuration

Examples:
  cactusflap play
  cactusflap play --difficulty hard
  cactusflap window --scale 2
  cactusflap serve --ssh :2222
  cactusflap scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cactusflap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name stored with scores (default: login name)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the flags that pick the game configuration.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, easy, normal, hard")
}

// newLogger builds the command's logger. Logs go to --log-file when set and
// to fallback otherwise. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "cactusflap",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig reads the YAML config. Without --difficulty the file's own
// difficulty section is kept.
func loadGameConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.FlappyConfig{}, err
		}
		config.ApplyFlappyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newGame builds a game from the selected config.
func newGame() (*flappy.Game, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}
	return flappy.New(cfg)
}

// playerName resolves --player, falling back to the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}

// screenshotDir is ~/.cactusflap/screenshots, or empty to use the temp dir.
func screenshotDir() string {
	dir, err := config.UserDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}

// openStore opens the scores database. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
