// Command canvasdemo renders canvas2d scenes to PNG.
//
// It draws one of the built-in demos, or a YAML, TOML or Lua drawing script,
// through a Surface onto a registered backend:
//
//	canvasdemo -demo shadow -output shadow.png
//	canvasdemo -script scene.yaml -watch
//	canvasdemo -script scene.lua -watch -serve :8080
//
// Defaults come from CANVASDEMO_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/backend"
	_ "github.com/gogpu/canvas2d/backend/raster"
	_ "github.com/gogpu/canvas2d/backend/trace"
)

// Config is the command configuration.
type Config struct {
	Width   int    `envconfig:"WIDTH" default:"400"`
	Height  int    `envconfig:"HEIGHT" default:"400"`
	Backend string `envconfig:"BACKEND" default:"raster"`
	Output  string `envconfig:"OUTPUT" default:"canvas.png"`
	Demo    string `envconfig:"DEMO" default:"all"`
	Script  string `envconfig:"SCRIPT"`
	Watch   bool   `envconfig:"WATCH"`
	Serve   string `envconfig:"SERVE"`
	Verbose bool   `envconfig:"VERBOSE"`
}

func loadConfig(args []string) (Config, error) {
	var cfg Config
	if err := envconfig.Process("canvasdemo", &cfg); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("canvasdemo", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "backend: "+strings.Join(backend.Available(), ", "))
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output PNG file")
	fs.StringVar(&cfg.Demo, "demo", cfg.Demo, "demo to draw: "+strings.Join(demoNames(), ", ")+" or all")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "YAML, TOML or Lua drawing script")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "repaint when the script changes")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "serve a live preview on this address, e.g. :8080")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if !backend.IsRegistered(cfg.Backend) {
		return cfg, fmt.Errorf("unknown backend %q, want one of %s", cfg.Backend, strings.Join(backend.Available(), ", "))
	}
	if cfg.Watch && cfg.Script == "" {
		return cfg, fmt.Errorf("-watch requires -script")
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	canvas2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
