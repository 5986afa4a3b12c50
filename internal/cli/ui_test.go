package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/judgefmt/pkg/bracket"
	"github.com/matzehuels/judgefmt/pkg/errors"
)

func TestWriteTextPlain(t *testing.T) {
	d := bracket.Render("J", bracket.LevelMap{0: {"root"}, 1: {"a", "bb"}})

	var buf bytes.Buffer
	if err := writeText(&buf, d, false); err != nil {
		t.Fatalf("writeText() error: %v", err)
	}
	if buf.String() != d.String() {
		t.Errorf("writeText() = %q, want %q", buf.String(), d.String())
	}
}

func TestWriteTextColorKeepsCharacters(t *testing.T) {
	d := bracket.Render("Judge", bracket.LevelMap{0: {"Alice"}, 1: {"Bob", "Carol"}, 2: {"D"}})

	// A buffer is not a terminal, so the renderer emits no escape codes.
	var buf bytes.Buffer
	if err := writeText(&buf, d, true); err != nil {
		t.Fatalf("writeText() error: %v", err)
	}
	if buf.String() != d.String() {
		t.Errorf("writeText() = %q, want %q", buf.String(), d.String())
	}
}

func TestReportError(t *testing.T) {
	t.Run("argument error", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, errors.New(errors.ErrCodeMissingLevel, "level 1 is missing"))

		out := buf.String()
		if !strings.Contains(out, "level 1 is missing") {
			t.Errorf("ReportError() = %q, should contain the message", out)
		}
		if !strings.Contains(out, UsageLine) {
			t.Errorf("ReportError() = %q, should contain the usage line", out)
		}
	})

	t.Run("other error", func(t *testing.T) {
		var buf bytes.Buffer
		ReportError(&buf, fmt.Errorf("write diagram: broken pipe"))

		out := buf.String()
		if !strings.Contains(out, "broken pipe") {
			t.Errorf("ReportError() = %q, should contain the message", out)
		}
		if strings.Contains(out, UsageLine) {
			t.Errorf("ReportError() = %q, should not print usage", out)
		}
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"argument error", errors.New(errors.ErrCodeEmptySpec, "x"), 2},
		{"wrapped argument error", fmt.Errorf("parse: %w", errors.New(errors.ErrCodeDuplicateLevel, "x")), 2},
		{"file error", errors.New(errors.ErrCodeFileNotFound, "x"), 1},
		{"plain error", fmt.Errorf("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
