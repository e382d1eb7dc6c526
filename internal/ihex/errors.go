package ihex

import (
	"errors"
	"fmt"
)

// Error kinds reported by Decode, usable with errors.Is.
var (
	ErrMalformedHeader    = errors.New("malformed record header")
	ErrMalformedExtension = errors.New("malformed extension address")
	ErrMalformedDataByte  = errors.New("malformed data byte")
	ErrAddressBelowRange  = errors.New("address out of range")
	ErrAddressAboveRange  = errors.New("address + length out of range")
)

// ParseError describes a decode failure at a specific input line.
type ParseError struct {
	Kind    error  // one of the Err* sentinels
	Line    int    // 1-based input line number
	Offset  int    // character offset within the line, set for data byte errors
	Address uint16 // record address field, set for range errors
	Length  int    // record length field, set for above-range errors
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrMalformedDataByte:
		return fmt.Sprintf("%s at line %d byte %d", e.Kind, e.Line, e.Offset)
	case ErrAddressBelowRange:
		return fmt.Sprintf("address %04X is out of range at line %d", e.Address, e.Line)
	case ErrAddressAboveRange:
		return fmt.Sprintf("address %04X + %d is out of range at line %d", e.Address, e.Length, e.Line)
	default:
		return fmt.Sprintf("%s at line %d", e.Kind, e.Line)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
