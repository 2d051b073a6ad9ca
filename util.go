package huffcoding

// firstNonBit returns the index of the first byte of s that is neither '0'
// nor '1', or -1 if there is none.
func firstNonBit(s string) int {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '0' && c != '1' {
			return i
		}
	}
	return -1
}

// paddingSize returns the number of padding bits, 1 through 8, that bring a
// bit sequence of the given length up to a whole number of bytes.  A length
// that is already byte aligned still takes a full byte of padding, since the
// padding always ends in a marker bit.
func paddingSize(numBits int) int {
	return 8 - numBits%8
}
