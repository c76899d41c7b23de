package recording

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/backend/trace"
)

func newTraceContext() (*canvas2d.Context, *trace.Backend) {
	b := trace.New()
	return canvas2d.NewContext(b, 400, 400), b
}

func TestAppendAssignsRevisions(t *testing.T) {
	q := NewQueue(ReplayAll)
	if rev := q.Append(Save{}, nil, Restore{}); rev != 2 {
		t.Errorf("Append revision = %d, want 2", rev)
	}
	q.Append(BeginPath{})

	var revs []uint64
	for _, e := range q.Snapshot() {
		revs = append(revs, e.Revision)
	}
	if !reflect.DeepEqual(revs, []uint64{1, 2, 3}) {
		t.Errorf("revisions = %v", revs)
	}
}

func TestReplayOrder(t *testing.T) {
	q := NewQueue(ReplayAll)
	q.Append(
		SetFillStyle{Style: "#ff0"},
		FillRect{X: 10, Y: 10, W: 100, H: 200},
		SetStrokeStyle{Style: "#0000ff"},
		StrokeRect{X: 200, Y: 220, W: 50, H: 100},
	)
	ctx, b := newTraceContext()
	if err := q.Replay(ctx); err != nil {
		t.Fatal(err)
	}

	calls := b.Calls()
	if len(calls) != 2 {
		t.Fatalf("backend calls = %d, want 2", len(calls))
	}
	if calls[0].Op != trace.OpFillPath || calls[0].Bounds != canvas2d.XYWH(10, 10, 100, 200) ||
		calls[0].Paint.Color.String() != "#ffff00" {
		t.Errorf("first call = %+v", calls[0])
	}
	if calls[1].Op != trace.OpStrokePath || calls[1].Bounds != canvas2d.XYWH(200, 220, 50, 100) ||
		calls[1].Paint.Color.String() != "#0000ff" {
		t.Errorf("second call = %+v", calls[1])
	}
}

func TestReplayAllResetsContext(t *testing.T) {
	q := NewQueue(ReplayAll)
	q.Append(Translate{X: 10, Y: 0}, FillRect{X: 0, Y: 0, W: 1, H: 1})
	ctx, b := newTraceContext()

	for range 3 {
		if err := q.Replay(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if q.Len() != 2 {
		t.Errorf("ReplayAll should keep entries, Len = %d", q.Len())
	}
	for i, c := range b.Calls() {
		if c.Bounds.Min.X != 10 {
			t.Errorf("pass %d drew at x=%v, want 10 (transform must not accumulate)", i, c.Bounds.Min.X)
		}
	}
}

func TestDrainOnceKeepsState(t *testing.T) {
	q := NewQueue(DrainOnce)
	ctx, b := newTraceContext()

	q.Append(SetFillStyle{Style: "red"}, FillRect{W: 1, H: 1})
	if err := q.Replay(ctx); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 0 {
		t.Fatalf("DrainOnce left %d entries", q.Len())
	}

	q.Append(FillRect{X: 5, W: 1, H: 1})
	if err := q.Replay(ctx); err != nil {
		t.Fatal(err)
	}
	calls := b.Calls()
	if len(calls) != 2 || calls[1].Paint.Color.String() != "#ff0000" {
		t.Errorf("second pass should keep fill style, calls = %+v", calls)
	}
}

func TestReplayStopsAtFirstError(t *testing.T) {
	q := NewQueue(ReplayAll)
	q.Append(
		FillRect{W: 1, H: 1},
		Arc{X: 0, Y: 0, Radius: -1, EndAngle: math.Pi},
		FillRect{W: 2, H: 2},
	)
	ctx, b := newTraceContext()

	err := q.Replay(ctx)
	if !errors.Is(err, canvas2d.ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if want := "recording: arc at revision 2: "; len(err.Error()) < len(want) || err.Error()[:len(want)] != want {
		t.Errorf("error = %q, want prefix %q", err, want)
	}
	if len(b.Calls()) != 1 {
		t.Errorf("backend calls = %d, want 1", len(b.Calls()))
	}
}

func TestDrainOnceDropsFailedCommand(t *testing.T) {
	q := NewQueue(DrainOnce)
	q.Append(
		Ellipse{RadiusX: -1, RadiusY: 1},
		FillRect{W: 1, H: 1},
	)
	ctx, _ := newTraceContext()
	if err := q.Replay(ctx); err == nil {
		t.Fatal("expected error")
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want the unreplayed command left", q.Len())
	}
	if err := q.Replay(ctx); err != nil {
		t.Errorf("second replay = %v", err)
	}
}

func TestFuncReceivesContext(t *testing.T) {
	q := NewQueue(ReplayAll)
	var seen []*canvas2d.Context
	q.Append(Func(func(ctx *canvas2d.Context) error {
		seen = append(seen, ctx)
		return ctx.FillRect(0, 0, 1, 1)
	}))

	ctx1, _ := newTraceContext()
	ctx2, b2 := newTraceContext()
	_ = q.Replay(ctx1)
	_ = q.Replay(ctx2)

	if len(seen) != 2 || seen[0] != ctx1 || seen[1] != ctx2 {
		t.Error("Func should receive the context being replayed")
	}
	if len(b2.Calls()) != 1 {
		t.Error("Func drawing should reach the bound backend")
	}
}

func TestApplyAllCommands(t *testing.T) {
	p := canvas2d.NewPath2D()
	p.Rect(0, 0, 5, 5)
	cmds := []Command{
		Save{}, Restore{}, Reset{},
		SetFillStyle{"blue"}, SetStrokeStyle{"green"}, SetGlobalAlpha{0.5},
		SetCompositeOperation{"copy"}, SetShadowBlur{2}, SetShadowColor{"black"},
		SetShadowOffset{1, 1}, SetFont{"12px Go"}, SetLineWidth{2},
		SetLineCap{"round"}, SetLineJoin{"bevel"}, SetMiterLimit{4},
		SetTextAlign{"center"}, SetTextBaseline{"top"},
		Translate{1, 1}, Scale{2, 2}, Rotate{0.1},
		Transform{canvas2d.Identity()}, SetTransform{canvas2d.Identity()}, ResetTransform{},
		BeginPath{}, MoveTo{0, 0}, LineTo{1, 0}, QuadraticCurveTo{1, 1, 2, 2},
		BezierCurveTo{3, 3, 4, 4, 5, 5}, ArcTo{6, 5, 6, 10, 1},
		Arc{10, 10, 5, 0, 1, false}, Ellipse{20, 20, 5, 3, 0.5, 0, 2, true},
		Rect{0, 0, 3, 3}, ClosePath{},
		FillRect{0, 0, 1, 1}, StrokeRect{0, 0, 1, 1}, ClearRect{0, 0, 1, 1},
		Fill{canvas2d.FillRuleEvenOdd}, Stroke{},
		FillPath{p, canvas2d.FillRuleNonZero}, StrokePath{p},
		FillText{"hi", 1, 1}, StrokeText{"hi", 1, 1},
		Func(nil),
	}
	ctx, b := newTraceContext()
	for _, cmd := range cmds {
		if err := Apply(ctx, cmd); err != nil {
			t.Errorf("Apply(%s) = %v", cmd.Type(), err)
		}
	}

	ctx.Reset()
	if err := Apply(ctx, SetShadowOffset{3, 4}); err != nil {
		t.Fatal(err)
	}
	if ctx.ShadowOffsetX() != 3 || ctx.ShadowOffsetY() != 4 {
		t.Error("SetShadowOffset not applied")
	}
	if len(b.Draws()) != 9 {
		t.Errorf("draw calls = %d, want 9", len(b.Draws()))
	}
}

type bogus struct{}

func (bogus) Type() CommandType { return CommandType(200) }

func TestApplyUnknown(t *testing.T) {
	ctx, _ := newTraceContext()
	if err := Apply(ctx, bogus{}); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("error = %v, want ErrUnknownCommand", err)
	}
}

func TestClearKeepsRevision(t *testing.T) {
	q := NewQueue(ReplayAll)
	q.Append(Save{}, Save{})
	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear should empty the queue")
	}
	if rev := q.Append(Restore{}); rev != 3 {
		t.Errorf("revision after Clear = %d, want 3", rev)
	}
}
