package main

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/recording"
)

// demos are the built-in scenes.
var demos = map[string]func(width, height int) []recording.Command{
	"rect":   rectDemo,
	"circle": circleDemo,
	"text":   textDemo,
	"shadow": shadowDemo,
	"clear":  clearDemo,
}

// demoOrder is the order "all" draws in. clear is left out.
var demoOrder = []string{"rect", "circle", "text", "shadow"}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func demoCommands(name string, width, height int) ([]recording.Command, error) {
	if name == "all" {
		var cmds []recording.Command
		for _, n := range demoOrder {
			cmds = append(cmds, demos[n](width, height)...)
		}
		return cmds, nil
	}
	demo, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q", name)
	}
	return demo(width, height), nil
}

func rectDemo(_, _ int) []recording.Command {
	return []recording.Command{
		recording.Save{},
		recording.SetFillStyle{Style: "#ff0"},
		recording.FillRect{X: 10, Y: 10, W: 100, H: 200},
		recording.SetStrokeStyle{Style: "#0000ff"},
		recording.StrokeRect{X: 200, Y: 220, W: 50, H: 100},
		recording.SetGlobalAlpha{Alpha: 0.2},
		recording.SetFillStyle{Style: "blue"},
		recording.FillRect{X: 250, Y: 250, W: 75, H: 50},
		recording.SetFillStyle{Style: "green"},
		recording.FillRect{X: 280, Y: 280, W: 75, H: 50},
		recording.Restore{},
	}
}

func circleDemo(_, _ int) []recording.Command {
	return []recording.Command{
		recording.SetFillStyle{Style: "red"},
		recording.SetStrokeStyle{Style: "#f000ff"},
		recording.BeginPath{},
		recording.Arc{X: 100, Y: 50, Radius: 50, EndAngle: 2 * math.Pi},
		recording.Stroke{},
	}
}

func textDemo(_, _ int) []recording.Command {
	const txt = "Hello World"
	return []recording.Command{
		recording.SetStrokeStyle{Style: "#0000ff"},
		recording.SetFont{Font: "30px Arial"},
		recording.Func(func(c *canvas2d.Context) error {
			m, err := c.MeasureText(txt)
			if err != nil {
				return err
			}
			return c.FillText(fmt.Sprintf("width:%g", m.Width), 10, 200)
		}),
		recording.FillText{Text: txt, X: 10, Y: 250},
	}
}

func shadowDemo(_, _ int) []recording.Command {
	return []recording.Command{
		recording.Save{},
		recording.SetShadowBlur{Blur: 20},
		recording.SetShadowColor{Color: "black"},
		recording.SetFillStyle{Style: "blue"},
		recording.FillRect{X: 90, Y: 20, W: 50, H: 100},
		recording.Restore{},
		recording.FillRect{X: 140, Y: 20, W: 50, H: 100},
	}
}

func clearDemo(width, height int) []recording.Command {
	return []recording.Command{
		recording.ClearRect{W: float64(width), H: float64(height)},
	}
}
