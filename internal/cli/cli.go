// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/ihexgo/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var start, size string
	readOptionFlags(flags, &opts, &start, &size)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts, start, size); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: ihexgo [options] <file to convert>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to convert, please pass the file to convert as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, start, size string) error {
	opts.Direction = strings.ToLower(opts.Direction)
	switch opts.Direction {
	case options.DirectionAuto, options.DirectionBinToHex, options.DirectionHexToBin:
	default:
		return fmt.Errorf("unsupported conversion direction: %s. Valid options: %s, %s",
			opts.Direction, options.DirectionBinToHex, options.DirectionHexToBin)
	}

	value, err := parseAddress(start)
	if err != nil {
		return fmt.Errorf("invalid start address %s: %w", start, err)
	}
	opts.Start = value

	value, err = parseAddress(size)
	if err != nil {
		return fmt.Errorf("invalid buffer size %s: %w", size, err)
	}
	opts.Size = value

	return nil
}

// parseAddress parses a decimal or 0x prefixed hexadecimal number.
func parseAddress(s string) (uint32, error) {
	value, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(value), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, start, size *string) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask with automatic output file naming, for example *.bin")
	flags.StringVar(&opts.Direction, "d", "", "conversion direction (bin2hex/hex2bin) - if not auto-detected from file extension")
	flags.StringVar(start, "start", "0", "absolute address of the first image byte, decimal or 0x prefixed hex")
	flags.StringVar(size, "size", "0x10000", "image buffer size in bytes for hex2bin conversions, decimal or 0x prefixed hex")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated output by decoding it and comparing it to the input image")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
