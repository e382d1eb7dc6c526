// Package fileprocessor handles file loading and conversion operations
package fileprocessor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/ihexgo/internal/ihex"
	"github.com/retroenv/ihexgo/internal/loader"
	"github.com/retroenv/ihexgo/internal/options"
	"github.com/retroenv/ihexgo/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete conversion workflow for one file
func ProcessFile(logger *log.Logger, opts options.Program) error {
	direction := detectDirection(opts)

	if opts.Batch != "" {
		opts.Output = GenerateOutputFilename(opts.Input, direction)
	}

	switch direction {
	case options.DirectionHexToBin:
		return decodeFile(logger, opts)
	default:
		return encodeFile(logger, opts)
	}
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the output filename for a given input file
func GenerateOutputFilename(inputFile, direction string) string {
	ext := filepath.Ext(inputFile)
	base := inputFile[:len(inputFile)-len(ext)]
	if direction == options.DirectionHexToBin {
		return base + ".bin"
	}
	return base + ".hex"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := buildinfo.Version(version, commit, date)
	logger.Info("ihexgo", log.String("version", versionString))
}

// detectDirection returns the conversion direction, derived from the
// input file extension unless set explicitly.
func detectDirection(opts options.Program) string {
	if opts.Direction != options.DirectionAuto {
		return opts.Direction
	}

	switch strings.ToLower(filepath.Ext(opts.Input)) {
	case ".hex", ".ihx", ".ihex":
		return options.DirectionHexToBin
	default:
		return options.DirectionBinToHex
	}
}

func encodeFile(logger *log.Logger, opts options.Program) error {
	img, err := loader.LoadBinary(opts)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	if err := ihex.Encode(writer, img.Data, img.Start, img.End); err != nil {
		_ = closeWriter(writer)
		return fmt.Errorf("encoding image: %w", err)
	}
	if err := closeWriter(writer); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Debug("Encoded image",
		log.Hex("start", img.Start),
		log.Hex("end", img.End))

	if opts.Verify {
		if err := verification.VerifyOutput(logger, opts, img); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	return nil
}

func decodeFile(logger *log.Logger, opts options.Program) error {
	file, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	img := loader.NewWindow(opts)
	spanned, err := ihex.Decode(file, img.Data, img.Start, img.End)
	if err != nil {
		return fmt.Errorf("decoding file %s: %w", opts.Input, err)
	}
	if spanned <= 0 {
		logger.Warn("No data records inside the address window",
			log.Hex("start", img.Start),
			log.Hex("end", img.End))
		spanned = 0
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	if _, err := writer.Write(img.Data[:spanned]); err != nil {
		_ = closeWriter(writer)
		return fmt.Errorf("writing image: %w", err)
	}
	if err := closeWriter(writer); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Debug("Decoded image",
		log.Hex("start", img.Start),
		log.Hex("bytes", spanned))
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

func closeWriter(writer io.Writer) error {
	closer, ok := writer.(io.Closer)
	if !ok || writer == os.Stdout {
		return nil
	}
	return closer.Close()
}
