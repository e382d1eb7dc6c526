// Package options contains the program options.
package options

// Conversion directions.
const (
	DirectionAuto     = ""
	DirectionBinToHex = "bin2hex"
	DirectionHexToBin = "hex2bin"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string
	Output string
	Batch  string
}

// Flags contains behavior options.
type Flags struct {
	Direction string
	Verify    bool
	Debug     bool
	Quiet     bool
}

// Window contains the absolute address window of the image buffer.
type Window struct {
	Start uint32 // absolute address of the first buffer byte
	Size  uint32 // buffer size in bytes for hex2bin conversions
}

// Program options of the converter.
type Program struct {
	Parameters
	Flags
	Window
}
