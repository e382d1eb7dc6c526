package ihex

import (
	"fmt"
	"io"
)

// Encode writes the Intel HEX representation of buf, which holds the
// bytes of the absolute address window [start, end), followed by the
// terminating End-Of-File record. Data records carry at most 32 bytes
// and never cross a 64KiB page. An Extended Linear Address record is
// emitted before the first Data record of every new page, including the
// first page whenever the window extends beyond the first 64KiB.
//
// A write failure aborts immediately; the stream may then contain a
// truncated document and its content must be discarded by the caller.
func Encode(w io.Writer, buf []byte, start, end uint32) error {
	currentPage := int64(0)
	if end > 0xffff {
		// Force a page record before the first chunk.
		currentPage = -1
	}

	for chunkStart := start; chunkStart < end; {
		chunkLen := end - chunkStart
		if chunkLen > maxChunkSize {
			chunkLen = maxChunkSize
		}
		if (chunkStart&0xffff)+chunkLen > 0xffff {
			chunkLen = pageSize - chunkStart&0xffff
		}

		if page := int64(chunkStart >> 16); page != currentPage {
			currentPage = page
			if err := writeExtLinearAddr(w, uint16(page)); err != nil {
				return err
			}
		}

		chunk := buf[chunkStart-start : chunkStart-start+chunkLen]
		if err := writeData(w, uint16(chunkStart&0xffff), chunk); err != nil {
			return err
		}

		chunkStart += chunkLen
	}

	if _, err := io.WriteString(w, ":00000001FF\n"); err != nil {
		return fmt.Errorf("writing end-of-file record: %w", err)
	}
	return nil
}

func writeExtLinearAddr(w io.Writer, page uint16) error {
	data := []byte{byte(page >> 8), byte(page)}
	sum := Checksum(data, 0, recordExtLinearAddr)
	if _, err := fmt.Fprintf(w, ":02000004%04X%02X\n", page, sum); err != nil {
		return fmt.Errorf("writing extended linear address record: %w", err)
	}
	return nil
}

func writeData(w io.Writer, address uint16, data []byte) error {
	if _, err := fmt.Fprintf(w, ":%02X%04X00", len(data), address); err != nil {
		return fmt.Errorf("writing data record header: %w", err)
	}
	for _, b := range data {
		if _, err := fmt.Fprintf(w, "%02X", b); err != nil {
			return fmt.Errorf("writing data record byte: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "%02X\n", Checksum(data, address, recordData)); err != nil {
		return fmt.Errorf("writing data record checksum: %w", err)
	}
	return nil
}
