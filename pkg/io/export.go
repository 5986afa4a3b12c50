package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/judgefmt/pkg/bracket"
)

type diagram struct {
	Name      string `json:"name"`
	GapFactor int    `json:"gap_factor"`
	Width     int    `json:"width"`
	Middle    int    `json:"middle"`
	Widths    []int  `json:"level_widths"`
	Rows      []row  `json:"rows"`
}

type row struct {
	Kind   string   `json:"kind"`
	Level  int      `json:"level"`
	Middle bool     `json:"middle,omitempty"`
	Text   string   `json:"text"`
	Labels []string `json:"labels,omitempty"`
}

// WriteJSON encodes a rendered diagram as JSON and writes it to w.
//
// Width is the separator length, which every non-empty content row's body
// shares. Each row carries its full printed text, gutter included.
func WriteJSON(d *bracket.Diagram, w io.Writer) error {
	out := diagram{
		Name:      d.Name,
		GapFactor: d.Layout.GapFactor,
		Width:     d.Layout.LineWidth(),
		Middle:    d.Layout.Middle,
		Widths:    d.Layout.Widths,
		Rows:      make([]row, len(d.Rows)),
	}
	for i, r := range d.Rows {
		out.Rows[i] = row{
			Kind:   r.Kind.String(),
			Level:  r.Level,
			Middle: r.Middle,
			Text:   r.String(),
			Labels: r.Labels,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
