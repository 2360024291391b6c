package mlkem

// sampleNTT generates a uniformly random NTT-domain polynomial by
// rejection-sampling candidates out of a SHAKE-128 stream seeded from the
// public matrix seed rho and indices (i, j). It is variable-time, but
// only with respect to rho, which is public in every caller — never with
// respect to secret data. Implements FIPS 203 Algorithm 7 (SampleNTT).
func sampleNTT(rho []byte, i, j byte) nttElement {
	h := xofA(rho, i, j)

	var buf [168]byte // SHAKE-128 rate
	var a nttElement
	count := 0

	for count < n {
		h.Read(buf[:])
		for off := 0; off+3 <= len(buf) && count < n; off += 3 {
			// Two 12-bit candidates per 3 bytes: byte 1's low nibble
			// belongs to d1, its high nibble to d2.
			d1 := uint16(buf[off]) | uint16(buf[off+1]&0x0f)<<8
			d2 := uint16(buf[off+1]>>4) | uint16(buf[off+2])<<4

			if d1 < q {
				a[count] = fieldElement(d1)
				count++
			}
			if d2 < q && count < n {
				a[count] = fieldElement(d2)
				count++
			}
		}
	}
	return a
}

// samplePolyCBD draws a polynomial from the centered binomial distribution
// of parameter eta (2 or 3) given exactly 64*eta bytes of PRF output. Each
// coefficient is the difference of two eta-bit popcounts, so it is
// constant-time with respect to the input bytes. Implements FIPS 203
// Algorithm 8 (SamplePolyCBD).
func samplePolyCBD(buf []byte, eta int) ringElement {
	var f ringElement
	for i := 0; i < n; i++ {
		base := 2 * eta * i

		var x, y uint32
		for b := 0; b < eta; b++ {
			x += bitAt(buf, base+b)
		}
		for b := 0; b < eta; b++ {
			y += bitAt(buf, base+eta+b)
		}

		f[i] = fieldSub(fieldElement(x), fieldElement(y))
	}
	return f
}

// bitAt extracts bit pos (0 = least significant bit of buf[0]) of buf.
func bitAt(buf []byte, pos int) uint32 {
	return uint32(buf[pos/8]>>(uint(pos)%8)) & 1
}
