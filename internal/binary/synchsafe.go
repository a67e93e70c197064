package binary

// SynchsafeMax is one past the largest value a 4-byte synchsafe integer holds.
const SynchsafeMax = 1 << 28

// DecodeSynchsafe decodes a 4-byte synchsafe integer.
//
// Each byte contributes its low 7 bits, most significant byte first, so the
// result is always below SynchsafeMax. The high bit of every byte is ignored
// rather than rejected. Slices that are not exactly 4 bytes decode to 0.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe is the inverse of DecodeSynchsafe. Bits above 28 are dropped.
func EncodeSynchsafe(v uint32) [4]byte {
	return [4]byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}
