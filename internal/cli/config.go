package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/judgefmt/pkg/errors"
)

// fileConfig mirrors config.toml. Pointer fields distinguish "unset" from
// a zero value.
type fileConfig struct {
	GapFactor  *int   `toml:"gap_factor"`
	Format     string `toml:"format"`
	Color      *bool  `toml:"color"`
	AllowEmpty *bool  `toml:"allow_empty"`
}

// loadConfig reads the config file at path. When path is empty the default
// location is used and a missing file is not an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// apply copies config values into opts for every flag the user did not set.
func (cfg fileConfig) apply(cmd *cobra.Command, opts *drawOpts) {
	flags := cmd.Flags()
	if cfg.GapFactor != nil && !flags.Changed("gap") {
		opts.gap = *cfg.GapFactor
	}
	if cfg.Format != "" && !flags.Changed("format") {
		opts.format = cfg.Format
	}
	if cfg.Color != nil && !flags.Changed("color") {
		opts.color = *cfg.Color
	}
	if cfg.AllowEmpty != nil && !flags.Changed("allow-empty") {
		opts.allowEmpty = *cfg.AllowEmpty
	}
}
