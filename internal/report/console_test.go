package report

import (
	"bytes"
	"errors"
	"testing"
)

func TestConsoleRendersActions(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		wantOut string
		wantErr string
	}{
		{
			name:    "dry run",
			event:   WouldRemove("/tmp/x"),
			wantOut: "\033[33;1mRemoving (dry-run):\033[0m /tmp/x\n",
		},
		{
			name:    "remove",
			event:   Removed("/tmp/x"),
			wantOut: "\033[31;1mRemoving:\033[0m /tmp/x\n",
		},
		{
			name:    "skip",
			event:   Skipped("/tmp/x"),
			wantOut: "\033[32;1mSkipping:\033[0m /tmp/x\n",
		},
		{
			name:    "error",
			event:   Failed("/tmp/x", errors.New("permission denied")),
			wantErr: "\033[31;1mError:\033[0m permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			NewConsole(&out, &errOut, DefaultPalette()).Record(tt.event)

			if out.String() != tt.wantOut {
				t.Errorf("stdout: expected %q, got %q", tt.wantOut, out.String())
			}
			if errOut.String() != tt.wantErr {
				t.Errorf("stderr: expected %q, got %q", tt.wantErr, errOut.String())
			}
		})
	}
}

func TestConsoleNoColor(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut, NoColorPalette())

	c.Record(Skipped("/tmp/x"))
	if out.String() != "Skipping: /tmp/x\n" {
		t.Errorf("expected unstyled output, got %q", out.String())
	}
}
