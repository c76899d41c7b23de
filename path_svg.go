package canvas2d

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// NewPath2DFromSVG builds a path from SVG path data. Supported commands
// are M, L, H, V, C, S, Q, T and Z in absolute and relative form.
// Malformed data returns an error wrapping [ErrInvalidArgument].
func NewPath2DFromSVG(d string) (*Path2D, error) {
	p := NewPath2D()
	s := svgScanner{data: []byte(d)}

	var cmd byte
	var cur, start, lastCtrl Point
	var prev byte
	for {
		s.skipSeparators()
		if s.done() {
			break
		}
		if c := s.peek(); isSVGCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("%w: expected svg command at position %d", ErrInvalidArgument, s.pos)
		} else if !isNumberStart(c) {
			return nil, fmt.Errorf("%w: unknown svg command %q at position %d", ErrInvalidArgument, c, s.pos)
		}

		rel := cmd >= 'a'
		upper := cmd &^ 0x20
		if upper == 'Z' {
			p.ClosePath()
			cur = start
			prev = 'Z'
			cmd = 0
			continue
		}

		args, err := s.numbers(svgArgCount[upper])
		if err != nil {
			return nil, fmt.Errorf("%w: command %q: %w", ErrInvalidArgument, cmd, err)
		}
		abs := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}

		switch upper {
		case 'M':
			cur = abs(args[0], args[1])
			start = cur
			p.MoveTo(cur.X, cur.Y)
			// Subsequent coordinate pairs are implicit line-tos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			cur = abs(args[0], args[1])
			p.LineTo(cur.X, cur.Y)
		case 'H':
			x := args[0]
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			p.LineTo(cur.X, cur.Y)
		case 'V':
			y := args[0]
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			p.LineTo(cur.X, cur.Y)
		case 'C':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			end := abs(args[4], args[5])
			p.BezierCurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			lastCtrl, cur = c2, end
		case 'S':
			c1 := cur
			if prev == 'C' || prev == 'S' {
				c1 = cur.Mul(2).Sub(lastCtrl)
			}
			c2 := abs(args[0], args[1])
			end := abs(args[2], args[3])
			p.BezierCurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			lastCtrl, cur = c2, end
		case 'Q':
			c := abs(args[0], args[1])
			end := abs(args[2], args[3])
			p.QuadraticCurveTo(c.X, c.Y, end.X, end.Y)
			lastCtrl, cur = c, end
		case 'T':
			c := cur
			if prev == 'Q' || prev == 'T' {
				c = cur.Mul(2).Sub(lastCtrl)
			}
			end := abs(args[0], args[1])
			p.QuadraticCurveTo(c.X, c.Y, end.X, end.Y)
			lastCtrl, cur = c, end
		}
		prev = upper
	}
	return p, nil
}

var svgArgCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2,
}

func isSVGCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqTtZz", c) >= 0
}

func isNumberStart(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

type svgScanner struct {
	data []byte
	pos  int
}

func (s *svgScanner) done() bool { return s.pos >= len(s.data) }
func (s *svgScanner) peek() byte { return s.data[s.pos] }

func (s *svgScanner) skipSeparators() {
	for !s.done() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// numbers reads n numbers separated by whitespace or commas.
func (s *svgScanner) numbers(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for range n {
		s.skipSeparators()
		v, err := s.number()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *svgScanner) number() (float64, error) {
	v, n := strconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, fmt.Errorf("expected number at position %d", s.pos)
	}
	s.pos += n
	return v, nil
}
