package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/judgefmt/pkg/bracket"
	"github.com/matzehuels/judgefmt/pkg/errors"
	"github.com/matzehuels/judgefmt/pkg/io"
	"github.com/matzehuels/judgefmt/pkg/levels"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatText: true, formatJSON: true}

// drawOpts holds the command-line flags for drawing a diagram.
type drawOpts struct {
	name       string // root name; overrides the name in a diagram file
	file       string // diagram file to read instead of level tokens
	gap        int    // minimum spaces between labels
	format     string // output format: "text" or "json"
	color      bool   // style the root name and separators
	allowEmpty bool   // accept levels without labels
	configPath string // explicit config file
}

// validateFormat checks that the output format is known.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'text' or 'json')", f)
	}
	return nil
}

// diagramInput is the validated input of one render.
type diagramInput struct {
	name   string
	levels bracket.LevelMap
	gap    int
}

// runDraw builds the level map, renders it and writes the result.
func (c *CLI) runDraw(cmd *cobra.Command, args []string, opts *drawOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg.apply(cmd, opts)

	if err := validateFormat(opts.format); err != nil {
		return err
	}

	in, err := c.loadInput(cmd, args, opts)
	if err != nil {
		return err
	}
	logger.Debug("Built level map", "levels", in.levels.Len(), "labels", in.levels.LabelCount())

	prog := newProgress(logger)
	d := bracket.Render(in.name, in.levels, bracket.WithGapFactor(in.gap))
	logger.Debug("Computed layout",
		"gap", d.Layout.GapFactor,
		"width", d.Layout.Total,
		"middle", d.Layout.Middle,
		"rows", len(d.Rows))
	if mid, ok := d.MiddleRow(); ok {
		logger.Debug("Name row", "kind", mid.Kind, "level", mid.Level)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	switch opts.format {
	case formatJSON:
		err = io.WriteJSON(d, c.Out)
	default:
		err = writeText(c.Out, d, opts.color)
	}
	if err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}

	prog.done(fmt.Sprintf("Rendered %d rows", len(d.Rows)))
	return nil
}

// loadInput resolves the name, levels and gap factor from either the level
// tokens or a diagram file. Flags take precedence over file values.
func (c *CLI) loadInput(cmd *cobra.Command, args []string, opts *drawOpts) (diagramInput, error) {
	in := diagramInput{name: opts.name, gap: opts.gap}

	if opts.file != "" {
		if len(args) > 0 {
			return in, errors.New(errors.ErrCodeInvalidInput, "level arguments cannot be combined with --file")
		}
		loggerFromContext(cmd.Context()).Debugf("Reading %s", opts.file)
		doc, err := io.ImportDiagram(opts.file)
		if err != nil {
			return in, err
		}
		if in.name == "" {
			in.name = doc.Name
		}
		if doc.GapFactor > 0 && !cmd.Flags().Changed("gap") {
			in.gap = doc.GapFactor
		}
		in.levels = doc.LevelMap()
		if err := levels.Validate(in.levels, levels.WithAllowEmpty(opts.allowEmpty)); err != nil {
			return in, fmt.Errorf("%s: %w", opts.file, err)
		}
	} else {
		m, err := levels.Build(args, levels.WithAllowEmpty(opts.allowEmpty))
		if err != nil {
			return in, err
		}
		in.levels = m
	}

	if in.name == "" {
		return in, errors.New(errors.ErrCodeInvalidName, "missing --name")
	}
	if err := errors.ValidateName(in.name); err != nil {
		return in, err
	}
	return in, nil
}
