// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/ihexgo/internal/ihex"
	"github.com/retroenv/ihexgo/internal/loader"
	"github.com/retroenv/ihexgo/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// VerifyOutput verifies that the written HEX document decodes back to
// the exact source image.
func VerifyOutput(logger *log.Logger, opts options.Program, img *loader.Image) error {
	if opts.Output == "" {
		return errors.New("can not verify console output")
	}

	file, err := os.Open(opts.Output)
	if err != nil {
		return fmt.Errorf("opening output file %s: %w", opts.Output, err)
	}
	defer func() { _ = file.Close() }()

	decoded := make([]byte, len(img.Data))
	spanned, err := ihex.Decode(file, decoded, img.Start, img.End)
	if err != nil {
		return fmt.Errorf("decoding output file: %w", err)
	}
	if len(img.Data) != 0 && spanned != len(img.Data) {
		return fmt.Errorf("mismatched spans, %d != %d", spanned, len(img.Data))
	}

	return checkBufferEqual(logger, img.Data, decoded)
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
