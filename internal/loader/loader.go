// Package loader handles memory image loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/ihexgo/internal/options"
)

// Image is a caller-owned byte buffer holding the data of the absolute
// address window [Start, End).
type Image struct {
	Start uint32
	End   uint32
	Data  []byte
}

// LoadBinary reads a raw binary image file into a buffer whose address
// window starts at the configured start address.
func LoadBinary(opts options.Program) (*Image, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading image file %s: %w", opts.Input, err)
	}

	img := &Image{
		Start: opts.Start,
		End:   opts.Start + uint32(len(data)),
		Data:  data,
	}
	return img, nil
}

// NewWindow allocates an empty image buffer of the configured size,
// starting at the configured start address.
func NewWindow(opts options.Program) *Image {
	return &Image{
		Start: opts.Start,
		End:   opts.Start + opts.Size,
		Data:  make([]byte, opts.Size),
	}
}
