package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/judgefmt/pkg/levels"
)

// SplitLevelArgs inserts "--" before the first level marker so that -l0,
// -l1, ... reach cmd as positional arguments instead of being parsed as
// flags. Values of cmd's flags are skipped, so "--name -lucky" keeps
// -lucky as the name. Arguments that already contain "--" are returned
// as is.
func SplitLevelArgs(cmd *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return args
		case levels.IsMarker(a):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		case takesNextArg(cmd, a):
			i++
		}
	}
	return args
}

// takesNextArg reports whether the flag argument a consumes the following
// argument as its value.
func takesNextArg(cmd *cobra.Command, a string) bool {
	if !strings.HasPrefix(a, "-") || a == "-" {
		return false
	}

	if name, ok := strings.CutPrefix(a, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		return f != nil && f.NoOptDefVal == ""
	}

	// Shorthands may be grouped ("-vn"); a value-taking shorthand uses the
	// rest of the group, or the next argument when it is last.
	short := a[1:]
	for j := 0; j < len(short); j++ {
		if short[j] == '=' {
			return false
		}
		f := cmd.Flags().ShorthandLookup(short[j : j+1])
		if f == nil {
			f = cmd.PersistentFlags().ShorthandLookup(short[j : j+1])
		}
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			return j == len(short)-1
		}
	}
	return false
}
