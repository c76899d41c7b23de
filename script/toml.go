package script

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// tomlDocument mirrors document for TOML input. Commands keep TOML's
// generic values and are re-encoded as YAML nodes so both formats share
// one command decoder.
type tomlDocument struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Commands   []any  `toml:"commands"`
}

// ParseTOML decodes a script from TOML. Commands are an array whose
// entries are call names or single-key inline tables:
//
//	width = 400
//	height = 400
//	commands = [
//	  { fillStyle = "#ff0" },
//	  { fillRect = [10, 10, 100, 200] },
//	  "beginPath",
//	  { arc = [300, 100, 40, 0, "360deg"] },
//	  "fill",
//	]
func ParseTOML(data []byte) (*Script, error) {
	var td tomlDocument
	if err := toml.Unmarshal(data, &td); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	doc := document{
		Width:      td.Width,
		Height:     td.Height,
		Background: td.Background,
		Commands:   make([]yaml.Node, len(td.Commands)),
	}
	for i, c := range td.Commands {
		if err := doc.Commands[i].Encode(c); err != nil {
			return nil, fmt.Errorf("%w: command %d: %w", ErrInvalidScript, i+1, err)
		}
	}
	return newScript(doc, func(i int) string {
		return fmt.Sprintf("command %d", i+1)
	})
}
