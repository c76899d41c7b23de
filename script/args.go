package script

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/canvas2d"
)

// args are the scalar arguments of one command.
type args struct {
	name  string
	nodes []*yaml.Node
}

func (a args) count(lo, hi int) error {
	if n := len(a.nodes); n < lo || n > hi {
		if lo == hi {
			return fmt.Errorf("want %d arguments, got %d", lo, n)
		}
		return fmt.Errorf("want %d to %d arguments, got %d", lo, hi, n)
	}
	return nil
}

func (a args) scalar(i int) (string, error) {
	n := a.nodes[i]
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("argument %d is not a scalar", i+1)
	}
	return n.Value, nil
}

// number parses argument i. A "deg" suffix converts degrees to radians.
func (a args) number(i int) (float64, error) {
	s, err := a.scalar(i)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	deg := strings.HasSuffix(s, "deg")
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "deg")), 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not a number", i+1, s)
	}
	if deg {
		v = canvas2d.Radians(v)
	}
	return v, nil
}

func (a args) numbers() ([]float64, error) {
	out := make([]float64, len(a.nodes))
	for i := range a.nodes {
		v, err := a.number(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// flag parses argument i as a boolean, false when absent.
func (a args) flag(i int) (bool, error) {
	if i >= len(a.nodes) {
		return false, nil
	}
	s, err := a.scalar(i)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("argument %d: %q is not a boolean", i+1, s)
	}
	return b, nil
}

// rule parses argument i as a fill rule, nonzero when absent.
func (a args) rule(i int) (canvas2d.FillRule, error) {
	if i >= len(a.nodes) {
		return canvas2d.FillRuleNonZero, nil
	}
	s, err := a.scalar(i)
	if err != nil {
		return 0, err
	}
	r, ok := canvas2d.ParseFillRule(s)
	if !ok {
		return 0, fmt.Errorf("argument %d: unknown fill rule %q", i+1, s)
	}
	return r, nil
}
