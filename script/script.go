package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/canvas2d/recording"
)

// Default canvas size when a script does not set one.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// ErrInvalidScript is returned for scripts that cannot be decoded.
var ErrInvalidScript = errors.New("script: invalid script")

// Script is a decoded drawing script.
type Script struct {
	Width      int
	Height     int
	Background string
	Commands   []recording.Command
}

type document struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Background string      `yaml:"background,omitempty"`
	Commands   []yaml.Node `yaml:"commands"`
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	return newScript(doc, func(i int) string {
		return fmt.Sprintf("line %d", doc.Commands[i].Line)
	})
}

// newScript validates doc and builds its commands. where names entry i
// in error messages.
func newScript(doc document, where func(i int) string) (*Script, error) {
	if doc.Width < 0 || doc.Height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidScript, doc.Width, doc.Height)
	}

	s := &Script{
		Width:      doc.Width,
		Height:     doc.Height,
		Background: doc.Background,
		Commands:   make([]recording.Command, 0, len(doc.Commands)),
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	for i := range doc.Commands {
		cmd, err := decodeCommand(&doc.Commands[i], where(i))
		if err != nil {
			return nil, err
		}
		s.Commands = append(s.Commands, cmd)
	}
	return s, nil
}

// Decode reads and decodes a script from r.
func Decode(r io.Reader) (*Script, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return Parse(buf.Bytes())
}

// Load reads and decodes the script file at path. Files ending in
// .toml are read as TOML, everything else as YAML.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parse = ParseTOML
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// decodeCommand turns one list entry into a command.
func decodeCommand(n *yaml.Node, where string) (recording.Command, error) {
	var name string
	var a args
	switch n.Kind {
	case yaml.ScalarNode:
		name = n.Value
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, fmt.Errorf("%w: %s: command must have exactly one name", ErrInvalidScript, where)
		}
		name = n.Content[0].Value
		v := n.Content[1]
		switch {
		case v.Kind == yaml.SequenceNode:
			a.nodes = v.Content
		case v.Kind == yaml.ScalarNode && v.Tag != "!!null":
			a.nodes = []*yaml.Node{v}
		case v.Kind == yaml.MappingNode && len(v.Content) == 0:
		case v.Kind == yaml.ScalarNode:
		default:
			return nil, fmt.Errorf("%w: %s: %s: arguments must be a value or a list", ErrInvalidScript, where, name)
		}
	default:
		return nil, fmt.Errorf("%w: %s: command must be a name or a mapping", ErrInvalidScript, where)
	}

	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown command %q", ErrInvalidScript, where, name)
	}
	a.name = name
	cmd, err := build(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %w", ErrInvalidScript, where, name, err)
	}
	return cmd, nil
}
