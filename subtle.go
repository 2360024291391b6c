package mlkem

// ctEqual reports whether a and b are byte-for-byte equal. It accumulates
// the XOR of every byte pair and only branches on the final accumulator —
// the one data-dependent step, and it depends on the aggregate XOR of all
// input bytes rather than any single one of them.
func ctEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// ctEqualMask is ctEqual expressed as a selection mask instead of a bool:
// 0xff if a equals b, 0x00 otherwise. It lets callers fold the comparison
// result into a later selection without ever branching on it.
func ctEqualMask(a, b []byte) byte {
	if len(a) != len(b) {
		return 0
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return isZero(diff)
}

// isZero returns 0xff if b == 0 and 0x00 otherwise, computed with
// arithmetic rather than a conditional.
func isZero(b byte) byte {
	v := int32(b)
	nonZero := uint32(v|-v) >> 31
	return byte(nonZero) - 1
}

// ctSelect sets dst to b where mask is 0xff and to a where mask is 0x00,
// byte by byte, with no branch on mask. Used in Decapsulate to choose
// between the correctly decapsulated shared secret and the
// implicit-rejection key without a data-dependent jump.
func ctSelect(dst *[SharedKeySize]byte, a, b [SharedKeySize]byte, mask byte) {
	for i := range dst {
		dst[i] = a[i] ^ (mask & (a[i] ^ b[i]))
	}
}
