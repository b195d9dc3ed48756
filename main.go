package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("asciicube: ")

	cfg, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln("invalid arguments:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Backend {
	case BackendTcell:
		var screen tcell.Screen
		if screen, err = newTcellScreen(); err != nil {
			log.Fatalln(err)
		}
		err = runTcell(ctx, cfg, screen)
	default:
		err = runANSI(ctx, cfg, newANSIPresenter(os.Stdout))
	}
	if err != nil {
		stop()
		log.Fatalln(err)
	}
}

// run renders and presents frames in order until ctx is done or cfg.Frames
// frames have been shown. Cancellation is not an error.
func run(ctx context.Context, r *Renderer, p Presenter, cfg Config) error {
	for cfg.Frames == 0 || r.FrameNumber() < cfg.Frames {
		if ctx.Err() != nil {
			return nil
		}
		n := r.FrameNumber()
		if err := p.Present(r.Next()); err != nil {
			return fmt.Errorf("failed to present frame %d: %w", n, err)
		}
		if cfg.Frames != 0 && r.FrameNumber() == cfg.Frames {
			break
		}
		if !pause(ctx, cfg.Delay) {
			return nil
		}
	}
	return nil
}

// pause waits for d, returning false if ctx ends first
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func runANSI(ctx context.Context, cfg Config, p *ansiPresenter) error {
	err := run(ctx, NewRenderer(cfg), p, cfg)
	if cerr := p.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to flush output: %w", cerr)
	}
	return err
}

// runTcell drives an initialized screen. The screen swallows SIGINT while it
// owns the terminal, so Ctrl-C and Esc end the animation instead. The screen
// is finalized before returning.
func runTcell(ctx context.Context, cfg Config, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	p := newTcellPresenter(screen)

	g.Go(func() error {
		// Fini unblocks PollEvent below
		defer p.Close()
		return run(gctx, NewRenderer(cfg), p, cfg)
	})

	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventKey:
				if isQuitKey(ev) {
					cancel()
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	return g.Wait()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
	}
	return false
}
