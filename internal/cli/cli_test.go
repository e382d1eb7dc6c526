package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/ihexgo/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.bin"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.bin"},
				Window:     options.Window{Size: 0x10000},
			},
		},
		{
			name: "direction and window flags",
			args: []string{"prog", "-d", "HEX2BIN", "-start", "0x8000", "-size", "4096", "-o", "out.bin", "test.hex"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.hex", Output: "out.bin"},
				Flags:      options.Flags{Direction: options.DirectionHexToBin},
				Window:     options.Window{Start: 0x8000, Size: 4096},
			},
		},
		{
			name: "batch mode without positional argument",
			args: []string{"prog", "-batch", "*.bin", "-verify"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.bin"},
				Flags:      options.Flags{Verify: true},
				Window:     options.Window{Size: 0x10000},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Input, got.Input)
			assert.Equal(t, tt.want.Output, got.Output)
			assert.Equal(t, tt.want.Batch, got.Batch)
			assert.Equal(t, tt.want.Direction, got.Direction)
			assert.Equal(t, tt.want.Verify, got.Verify)
			assert.Equal(t, tt.want.Start, got.Start)
			assert.Equal(t, tt.want.Size, got.Size)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "unsupported direction",
			args:        []string{"prog", "-d", "srec2bin", "test.bin"},
			errContains: "unsupported conversion direction",
		},
		{
			name:        "invalid start address",
			args:        []string{"prog", "-start", "0xZZ", "test.bin"},
			errContains: "invalid start address",
		},
		{
			name:        "invalid buffer size",
			args:        []string{"prog", "-size", "lots", "test.hex"},
			errContains: "invalid buffer size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestParseFlagsUsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{"prog"}},
		{name: "flag after file argument", args: []string{"prog", "test.bin", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
