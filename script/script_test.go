package script

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/backend/trace"
	"github.com/gogpu/canvas2d/recording"
)

const demo = `
width: 400
height: 300
background: white
commands:
  - fillStyle: "#ff0"
  - fillRect: [10, 10, 100, 200]
  - strokeStyle: "#0000ff"
  - strokeRect: [200, 220, 50, 100]
  - beginPath
  - arc: [300, 100, 40, 0, 360deg, true]
  - fill: evenodd
  - save: {}
  - restore:
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(demo))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Width != 400 || s.Height != 300 || s.Background != "white" {
		t.Errorf("header = %dx%d %q", s.Width, s.Height, s.Background)
	}
	want := []recording.Command{
		recording.SetFillStyle{Style: "#ff0"},
		recording.FillRect{X: 10, Y: 10, W: 100, H: 200},
		recording.SetStrokeStyle{Style: "#0000ff"},
		recording.StrokeRect{X: 200, Y: 220, W: 50, H: 100},
		recording.BeginPath{},
		recording.Arc{X: 300, Y: 100, Radius: 40, StartAngle: 0, EndAngle: canvas2d.Radians(360), CounterClockwise: true},
		recording.Fill{Rule: canvas2d.FillRuleEvenOdd},
		recording.Save{},
		recording.Restore{},
	}
	if !reflect.DeepEqual(s.Commands, want) {
		t.Errorf("Commands =\n%#v\nwant\n%#v", s.Commands, want)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("commands: [beginPath]"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", s.Width, s.Height, DefaultWidth, DefaultHeight)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		src  string
		want recording.Command
	}{
		{`globalAlpha: 0.5`, recording.SetGlobalAlpha{Alpha: 0.5}},
		{`globalCompositeOperation: destination-out`, recording.SetCompositeOperation{Op: "destination-out"}},
		{`shadowOffset: [3, -4]`, recording.SetShadowOffset{X: 3, Y: -4}},
		{`font: bold 16px monospace`, recording.SetFont{Font: "bold 16px monospace"}},
		{`lineCap: round`, recording.SetLineCap{Cap: "round"}},
		{`rotate: 90deg`, recording.Rotate{Angle: canvas2d.Radians(90)}},
		{`transform: [1, 0, 0, 1, 5, 6]`, recording.Transform{Matrix: canvas2d.NewMatrix(1, 0, 0, 1, 5, 6)}},
		{`quadraticCurveTo: [1, 2, 3, 4]`, recording.QuadraticCurveTo{CPX: 1, CPY: 2, X: 3, Y: 4}},
		{`bezierCurveTo: [1, 2, 3, 4, 5, 6]`, recording.BezierCurveTo{CP1X: 1, CP1Y: 2, CP2X: 3, CP2Y: 4, X: 5, Y: 6}},
		{`arcTo: [1, 2, 3, 4, 5]`, recording.ArcTo{X1: 1, Y1: 2, X2: 3, Y2: 4, Radius: 5}},
		{`ellipse: [1, 2, 3, 4, 0, 0, 3.5]`, recording.Ellipse{X: 1, Y: 2, RadiusX: 3, RadiusY: 4, EndAngle: 3.5}},
		{`fillText: [Hello, 10, 20]`, recording.FillText{Text: "Hello", X: 10, Y: 20}},
		{`strokeText: ["a b", 1, 2]`, recording.StrokeText{Text: "a b", X: 1, Y: 2}},
		{`clearRect: [0, 0, 5, 5]`, recording.ClearRect{W: 5, H: 5}},
		{`fill`, recording.Fill{}},
		{`stroke`, recording.Stroke{}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s, err := Parse([]byte("commands:\n  - " + tt.src + "\n"))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(s.Commands) != 1 || !reflect.DeepEqual(s.Commands[0], tt.want) {
				t.Errorf("Commands = %#v, want %#v", s.Commands, tt.want)
			}
		})
	}
}

func TestParseFillPath(t *testing.T) {
	s, err := Parse([]byte("commands:\n  - fillPath: [\"M0 0 L10 0 L10 10 Z\", evenodd]\n  - strokePath: \"M0 0 H5\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	fp, ok := s.Commands[0].(recording.FillPath)
	if !ok {
		t.Fatalf("command 0 = %T, want FillPath", s.Commands[0])
	}
	if fp.Rule != canvas2d.FillRuleEvenOdd {
		t.Errorf("rule = %v, want evenodd", fp.Rule)
	}
	if got := fp.Path.Bounds(); got != canvas2d.XYWH(0, 0, 10, 10) {
		t.Errorf("bounds = %v", got)
	}
	if _, ok := s.Commands[1].(recording.StrokePath); !ok {
		t.Errorf("command 1 = %T, want StrokePath", s.Commands[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"yaml", "commands: [", ""},
		{"unknown", "commands: [drawImage]", "unknown command"},
		{"arity", "commands:\n  - fillRect: [1, 2, 3]\n", "want 4 arguments"},
		{"not a number", "commands:\n  - lineWidth: wide\n", "not a number"},
		{"bad rule", "commands:\n  - fill: winding\n", "unknown fill rule"},
		{"bad flag", "commands:\n  - arc: [0, 0, 1, 0, 1, maybe]\n", "not a boolean"},
		{"two names", "commands:\n  - {save: {}, restore: {}}\n", "exactly one name"},
		{"nested list", "commands:\n  - [save]\n", "name or a mapping"},
		{"bad svg", "commands:\n  - fillPath: \"M0 0 X\"\n", "fillPath"},
		{"negative size", "width: -1\n", "negative size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, ErrInvalidScript) {
				t.Fatalf("Parse() error = %v, want ErrInvalidScript", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestErrorReportsLine(t *testing.T) {
	_, err := Parse([]byte("commands:\n  - save\n  - bogus\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error = %v, want line 3", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(demo), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s.Commands) != 9 {
		t.Errorf("commands = %d, want 9", len(s.Commands))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestDecodeAndReplay(t *testing.T) {
	s, err := Decode(strings.NewReader(demo))
	if err != nil {
		t.Fatal(err)
	}
	q := recording.NewQueue(recording.ReplayAll)
	q.Append(s.Commands...)

	b := trace.New()
	ctx := canvas2d.NewContext(b, s.Width, s.Height)
	if err := q.Replay(ctx); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	ops := b.Ops()
	want := []string{trace.OpFillPath, trace.OpStrokePath, trace.OpFillPath}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("ops = %v, want %v", ops, want)
	}
}
