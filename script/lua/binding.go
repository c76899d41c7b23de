package lua

import (
	"errors"
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/gogpu/canvas2d"
)

// errNoContext is returned when ctx functions are called outside a run.
var errNoContext = errors.New("no context bound")

// binding is the ctx table and the Context its functions currently
// draw into.
type binding struct {
	ctx   *canvas2d.Context
	table *rt.Table
}

type method func(c *canvas2d.Context, a luaArgs) ([]rt.Value, error)

func newBinding() *binding {
	b := &binding{table: rt.NewTable()}
	for name, m := range methods {
		fn := rt.NewGoFunction(func(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
			if b.ctx == nil {
				return nil, fmt.Errorf("ctx.%s: %w", name, errNoContext)
			}
			out, err := m(b.ctx, b.args(c))
			if err != nil {
				return nil, fmt.Errorf("ctx.%s: %w", name, err)
			}
			return c.PushingNext(t.Runtime, out...), nil
		}, name, 0, true)
		rt.SolemnlyDeclareCompliance(rt.ComplyMemSafe|rt.ComplyCpuSafe, fn)
		b.table.Set(rt.StringValue(name), rt.FunctionValue(fn))
	}
	return b
}

// bind points the ctx table at c and refreshes its fields.
func (b *binding) bind(c *canvas2d.Context) {
	b.ctx = c
	if c == nil {
		b.table.Set(rt.StringValue("width"), rt.NilValue)
		b.table.Set(rt.StringValue("height"), rt.NilValue)
		return
	}
	b.table.Set(rt.StringValue("width"), rt.IntValue(int64(c.Width())))
	b.table.Set(rt.StringValue("height"), rt.IntValue(int64(c.Height())))
}

// args returns the call arguments, dropping ctx itself for ctx:f() calls.
func (b *binding) args(c *rt.GoCont) luaArgs {
	all := append(c.Args(), c.Etc()...)
	if len(all) > 0 {
		if t, ok := all[0].TryTable(); ok && t == b.table {
			all = all[1:]
		}
	}
	return luaArgs(all)
}

type luaArgs []rt.Value

func (a luaArgs) number(i int) (float64, error) {
	if i >= len(a) {
		return 0, fmt.Errorf("argument %d missing", i+1)
	}
	if f, ok := a[i].TryFloat(); ok {
		return f, nil
	}
	if n, ok := a[i].TryInt(); ok {
		return float64(n), nil
	}
	return 0, fmt.Errorf("argument %d is not a number", i+1)
}

func (a luaArgs) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := a.number(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (a luaArgs) str(i int) (string, error) {
	if i >= len(a) {
		return "", fmt.Errorf("argument %d missing", i+1)
	}
	if s, ok := a[i].TryString(); ok {
		return s, nil
	}
	return "", fmt.Errorf("argument %d is not a string", i+1)
}

// flag reads an optional boolean; nil and absent are false.
func (a luaArgs) flag(i int) bool {
	if i >= len(a) {
		return false
	}
	v, _ := a[i].TryBool()
	return v
}
