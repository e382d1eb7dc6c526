package ihex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// decoder holds the state of one decode pass. The extension offset set
// by Extended Segment/Linear Address records persists across the
// following Data records; nothing survives the pass.
type decoder struct {
	buf      []byte
	start    uint32
	end      uint32
	offset   uint32
	greatest uint32
	line     int
}

// Decode reads the Intel HEX document from r into buf, which holds the
// bytes of the absolute address window [start, end). The reader is
// rewound to its beginning before the first line is read.
//
// Decode returns the number of bytes spanned by the decoded Data
// records, measured from start to one past the highest written address.
// When start is greater than zero and no Data record fell inside the
// window the result is zero or negative, meaning nothing was decoded.
//
// The buffer stays owned by the caller in all cases. After an error its
// contents up to the point of failure are unspecified.
func Decode(r io.ReadSeeker, buf []byte, start, end uint32) (int, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking to stream start: %w", err)
	}

	d := decoder{
		buf:   buf,
		start: start,
		end:   end,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d.line++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := d.decodeLine(line); err != nil {
			return 0, err
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading stream: %w", err)
	}

	return int(d.greatest) - int(d.start), nil
}

func (d *decoder) decodeLine(line string) error {
	hdr, payload, ok := parseHeader(line)
	if !ok {
		return &ParseError{Kind: ErrMalformedHeader, Line: d.line}
	}

	switch hdr.typ {
	case recordExtSegmentAddr:
		segment, ok := parseExtensionValue(payload)
		if !ok {
			return &ParseError{Kind: ErrMalformedExtension, Line: d.line}
		}
		d.offset = uint32(segment) * 16

	case recordExtLinearAddr:
		page, ok := parseExtensionValue(payload)
		if !ok {
			return &ParseError{Kind: ErrMalformedExtension, Line: d.line}
		}
		d.offset = uint32(page) * pageSize
	}

	if hdr.typ != recordData {
		// Non-Data records carry no buffer-destined payload, the first
		// byte pair is still validated when present.
		if len(payload) >= 2 {
			if _, err := strconv.ParseUint(payload[:2], 16, 8); err != nil {
				return &ParseError{Kind: ErrMalformedDataByte, Line: d.line, Offset: headerChars}
			}
		}
		return nil
	}

	return d.decodeData(hdr, payload)
}

// decodeData writes the payload bytes of a Data record into the buffer
// window. The bound checks use the record's full length, matching the
// chunking model of the write side, so a record either fits completely
// or fails.
func (d *decoder) decodeData(hdr header, payload string) error {
	absolute := uint32(hdr.address) + d.offset

	for i := 0; i < hdr.length; i++ {
		pos := i * 2
		if len(payload) < pos+2 {
			return &ParseError{Kind: ErrMalformedDataByte, Line: d.line, Offset: headerChars + pos}
		}
		value, err := strconv.ParseUint(payload[pos:pos+2], 16, 8)
		if err != nil {
			return &ParseError{Kind: ErrMalformedDataByte, Line: d.line, Offset: headerChars + pos}
		}

		if absolute < d.start {
			return &ParseError{Kind: ErrAddressBelowRange, Line: d.line, Address: hdr.address}
		}
		if absolute+uint32(hdr.length) > d.end {
			return &ParseError{Kind: ErrAddressAboveRange, Line: d.line, Address: hdr.address, Length: hdr.length}
		}
		if absolute+uint32(hdr.length) > d.greatest {
			d.greatest = absolute + uint32(hdr.length)
		}

		d.buf[absolute-d.start+uint32(i)] = byte(value)
	}
	return nil
}
