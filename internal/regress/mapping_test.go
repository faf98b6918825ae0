package regress

import (
	"errors"
	"testing"
)

func TestParseMappingLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		generated string
		label     string
		wantErr   bool
	}{
		{
			name:      "generated name and label",
			line:      "abc123 my_subtest",
			generated: "abc123",
			label:     "my_subtest",
		},
		{
			name:      "multi-token label joined",
			line:      "abc123 lib.tb_uart.all  (vhdl 2008)",
			generated: "abc123",
			label:     "lib.tb_uart.all (vhdl 2008)",
		},
		{
			name:      "generated name only",
			line:      "abc123",
			generated: "abc123",
			label:     "",
		},
		{
			name:      "leading whitespace tolerated",
			line:      "  abc123 my_subtest",
			generated: "abc123",
			label:     "my_subtest",
		},
		{
			name:    "blank line rejected",
			line:    "   ",
			wantErr: true,
		},
		{
			name:    "empty line rejected",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseMappingLine(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedMapping) {
					t.Fatalf("expected ErrMalformedMapping, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.GeneratedName != tt.generated {
				t.Errorf("expected generated name %q, got %q", tt.generated, rec.GeneratedName)
			}
			if rec.OriginalLabel != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, rec.OriginalLabel)
			}
			if rec.Raw != tt.line {
				t.Errorf("raw line not preserved: %q vs %q", tt.line, rec.Raw)
			}
		})
	}
}
