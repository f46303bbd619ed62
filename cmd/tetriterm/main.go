package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/config"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("tetriterm must be run in an interactive terminal")
	}

	theme, err := cfg.FindTheme()
	if err != nil {
		log.Fatal(err)
	}
	keys, err := cfg.Keybindings()
	if err != nil {
		log.Fatal(err)
	}
	board, err := cfg.Board()
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := config.InitLog(cfg.LogPath, config.SessionPrefix())
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	opts := []game.Option{
		game.WithInitialInterval(cfg.Interval),
		game.WithBoard(board),
	}
	if cfg.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Seed))
	}
	g := game.NewGame(opts...)

	log.Printf("New game for %s (seed %d, interval %s)", cfg.Nickname, cfg.Seed, cfg.Interval)

	var loop *game.Loop
	ui := gui.NewGUI(theme, cfg.Nickname, keys, func(a event.GameAction) bool {
		return loop.Do(a)
	})
	loop = game.NewLoop(g, ui.Update, game.WithLogger(log.Default(), cfg.LogLevel()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := loop.Run(ctx)
		if err == nil {
			ui.ShowGameOver(g.Score())
			return nil
		}

		ui.Stop()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	eg.Go(func() error {
		defer stop()
		return ui.Run()
	})

	if err := eg.Wait(); err != nil {
		log.Printf("Exiting with error: %s", err)
		logFile.Close()
		os.Exit(1)
	}

	summary(cfg.Nickname, g.State())
}

func summary(nick string, st game.State) {
	title := color.New(color.FgRed, color.Bold)
	label := color.New(color.FgCyan)

	if st.GameOver {
		title.Println("Game over!")
	} else {
		title.Println("Game abandoned")
	}

	label.Printf("%-7s", "Player")
	color.White(" %s", nick)
	label.Printf("%-7s", "Score")
	color.White(" %s", humanize.Comma(int64(st.Score)))
	label.Printf("%-7s", "Lines")
	color.White(" %s", humanize.Comma(int64(st.Lines)))
	label.Printf("%-7s", "Pieces")
	color.White(" %s", humanize.Comma(int64(st.Pieces)))
}
