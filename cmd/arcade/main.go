package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/game"
	"github.com/lixenwraith/arcade/ledger"
	"github.com/lixenwraith/arcade/logging"
	"github.com/lixenwraith/arcade/status"
	"github.com/lixenwraith/arcade/webhost"
)

type options struct {
	configPath string
	game       string
	web        bool
	debug      bool
	mute       bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("arcade", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file overlaid on defaults")
	fs.StringVar(&o.game, "game", game.Shooter, "Game to play: "+strings.Join(game.Kinds(), ", "))
	fs.BoolVar(&o.web, "web", false, "Serve websocket sessions instead of the terminal")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging and the metrics footer")
	fs.BoolVar(&o.mute, "mute", false, "Disable sound")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !slices.Contains(game.Kinds(), o.game) {
		return options{}, fmt.Errorf("%w: %q", game.ErrUnknownGame, o.game)
	}
	return o, nil
}

// loadConfig applies the file, then flag overrides, to the defaults
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if o.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 1
	}
	defer logging.Sync(log)

	stats := status.NewRegistry()
	credits := ledger.NewCredits(cfg.Credits.Initial, log)
	board := ledger.NewLeaderboard(cfg.Leaderboard.Size, log)
	deps := game.Deps{
		Logger:      log,
		Status:      stats,
		Reporter:    board,
		Leaderboard: board,
	}

	if opts.web {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		srv := webhost.NewServer(webhost.Config{Games: cfg.Games, TickRate: cfg.Web.TickRate}, credits, board, deps)
		fmt.Fprintf(os.Stderr, "serving on %s\n", cfg.Web.Addr)
		if err := srv.Serve(ctx, cfg.Web.Addr); err != nil {
			log.Error("server stopped", zap.Error(err))
			fmt.Fprintf(os.Stderr, "server: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runTerminal(cfg, opts, credits, deps); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		return 1
	}
	return 0
}
