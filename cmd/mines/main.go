package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

var (
	configPath string
	seed       uint64
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "mine placement seed, 0 picks a random one")
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Read(configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := config.NewLogger(*cfg, os.Stderr)
	if err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	board, err := mines.New(
		cfg.Board.Width, cfg.Board.Height, cfg.Board.MineCount,
		mines.NewSeededSource(seed),
	)
	if err != nil {
		log.Fatal("unable to create board: ", err)
	}

	s := newSession(board, os.Stdout, log, term.IsTerminal(int(os.Stdin.Fd())))

	if err := serve(mainCtx, s, os.Stdin); err != nil {
		log.Errorf("exit reason: %s", err)
	}
}
