// Package ihex encodes and decodes the Intel HEX representation of a
// contiguous memory image.
//
// Each line of the wire format is one record:
//
//	:LLAAAATTDD...DDCC
//
// LL is the number of data bytes, AAAA the 16-bit record address, TT the
// record type, DD the data bytes and CC the two's-complement checksum.
// Supported record types are Data (00), End-Of-File (01), Extended
// Segment Address (02) and Extended Linear Address (04). The extension
// records update a running offset that is added to the addresses of all
// following Data records.
//
// Both directions operate on a caller-owned buffer that represents the
// absolute address window [start, end): Decode fills it from a HEX
// document, Encode emits a HEX document from it.
package ihex
