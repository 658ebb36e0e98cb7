// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048
//
// Running the program starts one game on a 4x4 board and exits when the
// 2048 tile is reached or no move is left. There are no flags; the
// frontend, colors and logging come from the config file (see
// internal/config), located via $T2048_CONFIG, ~/.t2048/config.yaml or
// ./configs/t2048.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/registry"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-2048/internal/platform/line"
	_ "github.com/vovakirdan/tui-2048/internal/platform/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 starts a game of 2048 on a 4x4 board.

Slide all tiles up, down, left or right; equal tiles that collide merge
into their sum and add it to your score. After every move that changes
the board a new 2 (or, one time in ten, a 4) appears. Reach a 2048 tile
to win; the game is lost when the board is full and nothing can merge.

Controls:
  w / Up arrow      - Slide up
  a / Left arrow    - Slide left
  s / Down arrow    - Slide down
  d / Right arrow   - Slide right
  q / Ctrl+C        - Quit`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err != nil {
		return err
	}

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))

	frontendID := cfg.ResolveFrontend(stdinTTY && stdoutTTY)
	runtimeCfg := core.DefaultConfig()
	runtimeCfg.ColorEnabled = cfg.ResolveColor(stdoutTTY, termenv.EnvNoColor())

	logger, closeLog, err := newLogger(cfg.Log, frontendID)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(string(frontendID), registry.Env{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger,
		Config: runtimeCfg,
	})
	if err != nil {
		return err
	}

	g := game.New(runtimeCfg)
	if err := frontend.Run(cmd.Context(), g); err != nil {
		logger.Error("session failed", "frontend", frontend.ID(), "error", err)
		return fmt.Errorf("%s: %w", frontend.Title(), err)
	}

	logOutcome(logger, g.Snapshot())
	return nil
}

// logOutcome records the final state of the session.
func logOutcome(logger *log.Logger, snap game.Snapshot) {
	logger.Info("session ended",
		"status", snap.Status,
		"score", snap.Score,
		"turns", snap.Turns,
		"max_tile", snap.MaxTile,
	)
}
