package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/console"
	"github.com/vancomm/minesweeper-board/internal/logging"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
)

type flags struct {
	configPath   string
	size         int
	mines        int
	seed         uint64
	connectivity int
	output       string
	debug        bool
}

// NewRootCmd creates the sweeper command
func NewRootCmd() *cobra.Command {
	var f flags
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "sweeper",
		Short: "Play minesweeper in the terminal",
		Long: `sweeper reads board commands from stdin and prints the board after each one.

Commands:
  g              print the board
  o <row> <col>  reveal a tile
  f <row> <col>  toggle a flag
  e              end the game
  r              restart with the same settings
  s <n>          restart on an n x n board
  n size=<n> mines=<m> [seed=<s>]
                 start a new game
  d              toggle debug display
  q              quit

Several commands can share a line when separated by ';'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &f, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file path")
	rootCmd.Flags().IntVar(&f.size, "size", defaults.BoardSize, "board size (env: SWEEPER_BOARD_SIZE)")
	rootCmd.Flags().IntVar(&f.mines, "mines", defaults.MineCount, "mine count (env: SWEEPER_MINE_COUNT)")
	rootCmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one (env: SWEEPER_SEED)")
	rootCmd.Flags().IntVar(&f.connectivity, "connectivity", defaults.Connectivity, "flood fill connectivity: 4 or 8 (env: SWEEPER_CONNECTIVITY)")
	rootCmd.Flags().StringVarP(&f.output, "output", "o", defaults.Output, "output format: text, json (env: SWEEPER_OUTPUT)")
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, "show mines and counts on every tile (env: SWEEPER_DEBUG)")

	return rootCmd
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("size") {
		cfg.BoardSize = f.size
	}
	if set("mines") {
		cfg.MineCount = f.mines
	}
	if set("seed") {
		cfg.Seed = f.seed
	}
	if set("connectivity") {
		cfg.Connectivity = f.connectivity
	}
	if set("output") {
		cfg.Output = f.output
	}
	if set("debug") {
		cfg.Debug = f.debug
	}
}

func boardOptions(cfg *config.Config) []mines.Option {
	opts := []mines.Option{
		mines.WithConnectivity(mines.Connectivity(cfg.Connectivity)),
		mines.WithDebug(cfg.Debug),
	}
	if cfg.Seed != 0 {
		opts = append(opts, mines.WithSeed(cfg.Seed, cfg.Seed))
	}
	return opts
}

func run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mainCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := logging.Setup(log, cfg); err != nil {
		return err
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	format, err := console.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	s, err := session.New(log, cfg.BoardSize, cfg.MineCount, boardOptions(cfg)...)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return console.Run(gCtx, in, out, s, format)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorf("exit reason: %s", err)
		return err
	}
	return nil
}
