package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/backend"
	"github.com/gogpu/canvas2d/internal/preview"
	"github.com/gogpu/canvas2d/internal/watch"
	"github.com/gogpu/canvas2d/recording"
	"github.com/gogpu/canvas2d/script"
	"github.com/gogpu/canvas2d/script/lua"
	"github.com/gogpu/canvas2d/surface"
)

// scene is one frame's worth of commands.
type scene struct {
	width, height int
	background    string
	commands      []recording.Command
}

// renderer paints scenes through a Surface and writes them out.
type renderer struct {
	cfg  Config
	surf *surface.Surface
	lua  *lua.Runtime

	// preview receives every frame when set.
	preview *preview.Server

	// paint is the backend for the next frame. Tests replace it.
	paint func(width, height int) (canvas2d.Backend, error)
}

func newRenderer(cfg Config) (*renderer, error) {
	surf, err := surface.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	luaCfg := lua.DefaultConfig()
	luaCfg.Stdout = os.Stderr
	rt, err := lua.New(luaCfg)
	if err != nil {
		return nil, err
	}
	return &renderer{
		cfg:  cfg,
		surf: surf,
		lua:  rt,
		paint: func(width, height int) (canvas2d.Backend, error) {
			return backend.New(cfg.Backend, width, height)
		},
	}, nil
}

func (r *renderer) Close() error {
	return errors.Join(r.surf.Close(), r.lua.Close())
}

func (r *renderer) load() (scene, error) {
	sc := scene{width: r.cfg.Width, height: r.cfg.Height}
	path := r.cfg.Script
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		cmds, err := demoCommands(r.cfg.Demo, sc.width, sc.height)
		if err != nil {
			return sc, err
		}
		sc.commands = cmds
	case ".lua":
		code, err := os.ReadFile(path)
		if err != nil {
			return sc, err
		}
		cmd, err := r.lua.Command(path, code)
		if err != nil {
			return sc, err
		}
		sc.commands = []recording.Command{cmd}
	default:
		s, err := script.Load(path)
		if err != nil {
			return sc, err
		}
		sc.width, sc.height = s.Width, s.Height
		sc.background = s.Background
		sc.commands = s.Commands
	}
	return sc, nil
}

// render loads the scene, paints it onto a fresh backend and saves the
// result when the backend can write PNGs.
func (r *renderer) render() error {
	sc, err := r.load()
	if err != nil {
		return err
	}

	if w, h := r.surf.Size(); w != sc.width || h != sc.height {
		if err := r.surf.Resize(sc.width, sc.height); err != nil {
			return err
		}
	}
	r.surf.Clear()
	if _, err := r.surf.Draw(sc.commands...); err != nil {
		return err
	}

	b, err := r.paint(sc.width, sc.height)
	if err != nil {
		return err
	}
	if sc.background != "" {
		bg, err := canvas2d.ParseColor(sc.background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		if f, ok := b.(interface{ Fill(canvas2d.RGBA) }); ok {
			f.Fill(bg)
		}
	}
	if err := r.surf.Paint(b); err != nil {
		return err
	}

	if r.preview != nil {
		if enc, ok := b.(interface{ EncodePNG(io.Writer) error }); ok {
			var buf bytes.Buffer
			if err := enc.EncodePNG(&buf); err != nil {
				return err
			}
			rev := r.preview.Publish(buf.Bytes())
			canvas2d.Logger().Debug("canvasdemo: published frame", "revision", rev)
		}
	}

	saver, ok := b.(interface{ SavePNG(string) error })
	if !ok {
		canvas2d.Logger().Warn("canvasdemo: backend cannot write PNG", "backend", r.cfg.Backend)
		return nil
	}
	if err := saver.SavePNG(r.cfg.Output); err != nil {
		return err
	}
	canvas2d.Logger().Info("canvasdemo: wrote image",
		"path", r.cfg.Output, "width", sc.width, "height", sc.height, "commands", len(sc.commands))
	return nil
}

// serve runs the preview server until ctx is done.
func serve(ctx context.Context, addr string, p *preview.Server) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      p.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		canvas2d.Logger().Info("canvasdemo: preview listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func run(ctx context.Context, cfg Config) error {
	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	live := cfg.Watch || cfg.Serve != ""
	if cfg.Serve != "" {
		r.preview = preview.New()
	}

	if err := r.render(); err != nil {
		if !live {
			return err
		}
		canvas2d.Logger().Error("canvasdemo: render failed", "err", err)
	}
	if !live {
		return nil
	}

	if cfg.Watch {
		w, err := watch.New(cfg.Script, 0, r.render, func(err error) {
			canvas2d.Logger().Error("canvasdemo: render failed", "err", err)
		})
		if err != nil {
			return err
		}
		defer w.Stop()
		if err := w.Start(); err != nil {
			return err
		}
		canvas2d.Logger().Info("canvasdemo: watching", "script", cfg.Script)
	}

	if r.preview != nil {
		return serve(ctx, cfg.Serve, r.preview)
	}
	<-ctx.Done()
	return nil
}
