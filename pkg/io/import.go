package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/judgefmt/pkg/bracket"
	"github.com/matzehuels/judgefmt/pkg/errors"
	"github.com/matzehuels/judgefmt/pkg/levels"
)

// Format is a diagram document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var extFormats = map[string]Format{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported diagram file %q (must be .toml, .yaml, .yml or .json)", path)
}

// Document is a diagram read from a file.
type Document struct {
	Name      string     `json:"name" toml:"name" yaml:"name"`
	GapFactor int        `json:"gap_factor,omitempty" toml:"gap_factor,omitempty" yaml:"gap_factor,omitempty"`
	Levels    [][]string `json:"levels" toml:"levels" yaml:"levels"`
}

// LevelMap returns the document's levels keyed by index.
func (d *Document) LevelMap() bracket.LevelMap {
	return bracket.FromSlices(d.Levels)
}

// ReadDiagram decodes a diagram document from r.
//
// The name may be left empty when the caller supplies it separately. The
// levels must be non-empty and every label must be a non-empty string
// without control characters. Keys other than name, gap_factor and levels
// are rejected in every format. A level may be an empty list; whether
// that is allowed is left to the caller. ReadDiagram does not close r.
func ReadDiagram(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var doc Document
	switch format {
	case FormatTOML:
		err = decodeTOML(data, &doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&doc); err == io.EOF {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown diagram format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s diagram", format)
	}

	if err := levels.Validate(doc.LevelMap(), levels.WithAllowEmpty(true)); err != nil {
		return nil, err
	}
	for i, labels := range doc.Levels {
		for _, s := range labels {
			if err := errors.ValidateLabel(s); err != nil {
				return nil, fmt.Errorf("level %d: %w", i, err)
			}
		}
	}
	return &doc, nil
}

// decodeTOML decodes data into doc and rejects unknown keys.
func decodeTOML(data []byte, doc *Document) error {
	md, err := toml.Decode(string(data), doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// ImportDiagram reads the diagram file at path. The format is chosen from
// the file extension.
func ImportDiagram(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "diagram file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadDiagram(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
