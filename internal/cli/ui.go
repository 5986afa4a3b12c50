package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/judgefmt/pkg/bracket"
	"github.com/matzehuels/judgefmt/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan = lipgloss.Color("36")  // Teal - root name
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorDim  = lipgloss.Color("240") // Dim gray - bracket lines, usage
)

// =============================================================================
// Diagram Output
// =============================================================================

// diagramStyles are bound to the output writer so colors are only emitted
// when it is a terminal.
type diagramStyles struct {
	name lipgloss.Style
	line lipgloss.Style
}

func newDiagramStyles(w io.Writer) diagramStyles {
	r := lipgloss.NewRenderer(w)
	return diagramStyles{
		name: r.NewStyle().Bold(true).Foreground(colorCyan),
		line: r.NewStyle().Foreground(colorDim),
	}
}

// writeText writes the diagram rows in order. With color set, the root name
// and separator rows are styled; the characters are unchanged.
func writeText(w io.Writer, d *bracket.Diagram, color bool) error {
	if !color {
		_, err := d.WriteTo(w)
		return err
	}

	st := newDiagramStyles(w)
	var b strings.Builder
	for _, r := range d.Rows {
		gutter := r.Gutter
		if r.Middle {
			gutter = st.name.Render(d.Name) + ":"
		}
		body := r.Body
		if r.Kind == bracket.RowSeparator {
			body = st.line.Render(body)
		}
		b.WriteString(gutter)
		b.WriteString(body)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// =============================================================================
// Status Output
// =============================================================================

const iconError = "✗"

// ReportError prints err to w. Argument errors are followed by the usage line.
func ReportError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	icon := r.NewStyle().Foreground(colorRed).Render(iconError)
	fmt.Fprintln(w, icon+" "+errors.UserMessage(err))
	if errors.IsArgError(err) {
		fmt.Fprintln(w, r.NewStyle().Foreground(colorDim).Render(UsageLine))
	}
}

// ExitCode maps err to the process exit status: 0 for success, 2 for
// argument errors and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsArgError(err):
		return 2
	default:
		return 1
	}
}
