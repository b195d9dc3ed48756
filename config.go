package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// Backend names accepted by -backend
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config holds the runtime settings of the animation.
type Config struct {
	Backend  string
	Frames   uint64        // 0 runs until terminated
	Delay    time.Duration // pause between frames
	TimeStep float64       // radians per frame
	Distance float32       // camera distance along -Z
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Backend:  BackendANSI,
		Frames:   0,
		Delay:    30 * time.Millisecond,
		TimeStep: 0.01,
		Distance: 2.5,
	}
}

func parseFlags(name string, args []string, output io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Output backend: 'ansi' or 'tcell'")
	fs.Uint64Var(&cfg.Frames, "frames", cfg.Frames, "Stop after this many frames (0 runs forever)")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Pause between frames")
	fs.Float64Var(&cfg.TimeStep, "step", cfg.TimeStep, "Rotation in radians per frame")
	distance := float64(cfg.Distance)
	fs.Float64Var(&distance, "distance", distance, "Camera distance from the cube center")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg.Distance = float32(distance)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	if c.Distance <= NearPlane {
		return fmt.Errorf("distance must be greater than %v", NearPlane)
	}
	return nil
}
