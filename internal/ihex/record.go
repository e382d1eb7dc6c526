package ihex

import "strconv"

// Record types understood by the codec.
const (
	recordData           byte = 0x00
	recordEOF            byte = 0x01
	recordExtSegmentAddr byte = 0x02
	recordExtLinearAddr  byte = 0x04
)

const (
	headerChars  = 9  // ":LLAAAATT"
	maxChunkSize = 32 // data bytes per emitted Data record
	pageSize     = 0x10000
)

// header holds the parsed ":LLAAAATT" fields of one record line.
type header struct {
	length  int
	address uint16
	typ     byte
}

// parseHeader parses the 9 character record header of line. The second
// return value is the payload following the header, holding the data
// bytes (or the extension address) and the trailing checksum field.
func parseHeader(line string) (header, string, bool) {
	if len(line) < headerChars || line[0] != ':' {
		return header{}, "", false
	}
	length, err := strconv.ParseUint(line[1:3], 16, 8)
	if err != nil {
		return header{}, "", false
	}
	address, err := strconv.ParseUint(line[3:7], 16, 16)
	if err != nil {
		return header{}, "", false
	}
	typ, err := strconv.ParseUint(line[7:9], 16, 8)
	if err != nil {
		return header{}, "", false
	}

	hdr := header{
		length:  int(length),
		address: uint16(address),
		typ:     byte(typ),
	}
	return hdr, line[headerChars:], true
}

// parseExtensionValue parses the 4 hex digit payload of an Extended
// Segment or Extended Linear Address record.
func parseExtensionValue(payload string) (uint16, bool) {
	if len(payload) < 4 {
		return 0, false
	}
	value, err := strconv.ParseUint(payload[:4], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(value), true
}
