// Package namedays loads the year independent name day table
// Loading is fail-soft: a missing or broken source yields an empty table
package namedays

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dashboard/internal/core/calendar"
	perr "dashboard/internal/platform/errors"
	"dashboard/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder for a static source
type Format uint8

const (
	// FormatJSON is {"01-02": ["Aapeli"], ...}
	FormatJSON Format = iota
	// FormatYAML is the same mapping written as YAML
	FormatYAML
)

// FormatOf picks the format from a file extension; anything but .yaml/.yml is JSON
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// names is one table value: either "Aapeli" or ["Aapeli", "Aappo"]
type names []string

func (n *names) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = names{s}
		return nil
	}
	var l []string
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	*n = l
	return nil
}

func (n *names) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*n = names{node.Value}
		return nil
	case yaml.SequenceNode:
		var l []string
		if err := node.Decode(&l); err != nil {
			return err
		}
		*n = l
		return nil
	}
	return perr.Newf(perr.ErrorCodeValidation, "line %d: expected a name or a list of names", node.Line)
}

// Decode reads a whole static source
func Decode(r io.Reader, f Format) (calendar.StaticTable, error) {
	raw := map[string]names{}
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, perr.Wrap(err, perr.ErrorCodeValidation, "decode yaml name days")
		}
	default:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode json name days")
		}
	}

	out := make(calendar.StaticTable, len(raw))
	for k, v := range raw {
		out[strings.TrimSpace(k)] = []string(v)
	}
	return out, nil
}

// Load reads path and returns its table. Failures are logged as warnings and
// produce an empty table
func Load(path string) calendar.StaticTable {
	log := logger.Named("namedays")
	if path == "" {
		return calendar.StaticTable{}
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("static name days unavailable; continuing without")
		return calendar.StaticTable{}
	}
	defer f.Close()

	t, err := Decode(f, FormatOf(path))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("static name days malformed; continuing without")
		return calendar.StaticTable{}
	}
	log.Debug().Str("path", path).Int("keys", t.Len()).Msg("static name days loaded")
	return t
}

// Project loads path and projects it onto years, logging rejected keys
func Project(path string, years ...int) calendar.Projection {
	p, rejected := Load(path).Project(years...)
	if len(rejected) > 0 {
		logger.Named("namedays").Debug().Strs("rejected", rejected).Msg("static name day keys skipped")
	}
	return p
}
