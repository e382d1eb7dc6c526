package ihex

// Checksum computes the two's-complement record checksum over the data
// length, the two address bytes, the record type and the data bytes.
// The sum of all covered bytes plus the checksum is zero modulo 256.
func Checksum(data []byte, address uint16, typ byte) byte {
	sum := byte(len(data)) + byte(address>>8) + byte(address) + typ
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
