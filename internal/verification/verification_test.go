package verification

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/ihexgo/internal/ihex"
	"github.com/retroenv/ihexgo/internal/loader"
	"github.com/retroenv/ihexgo/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testImage(start uint32, data []byte) *loader.Image {
	return &loader.Image{
		Start: start,
		End:   start + uint32(len(data)),
		Data:  data,
	}
}

func writeHexFile(t *testing.T, img *loader.Image) string {
	t.Helper()

	var buf bytes.Buffer
	assert.NoError(t, ihex.Encode(&buf, img.Data, img.Start, img.End))

	file := filepath.Join(t.TempDir(), "image.hex")
	assert.NoError(t, os.WriteFile(file, buf.Bytes(), 0o644))
	return file
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	img := testImage(0x10000, []byte{0x11, 0x22, 0x33})

	opts := options.Program{}
	opts.Output = writeHexFile(t, img)

	assert.NoError(t, VerifyOutput(logger, opts, img))
}

func TestVerifyOutputMismatch(t *testing.T) {
	logger := log.NewTestLogger(t)
	img := testImage(0, []byte{0x11, 0x22, 0x33})

	opts := options.Program{}
	opts.Output = writeHexFile(t, img)

	img.Data = []byte{0x11, 0x22, 0x44}
	err := VerifyOutput(logger, opts, img)
	assert.ErrorContains(t, err, "offset mismatch")
}

func TestVerifyOutputConsole(t *testing.T) {
	logger := log.NewTestLogger(t)
	img := testImage(0, []byte{0x11})

	err := VerifyOutput(logger, options.Program{}, img)
	assert.ErrorContains(t, err, "can not verify console output")
}

func TestVerifyOutputMissingFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	img := testImage(0, []byte{0x11})

	opts := options.Program{}
	opts.Output = filepath.Join(t.TempDir(), "missing.hex")

	err := VerifyOutput(logger, opts, img)
	assert.Error(t, err)
}
