package mlkem

// byteEncode packs a polynomial's coefficients into a byte string using d
// bits per coefficient, least-significant bit first within each byte. It
// is generic over ringElement and nttElement since packing doesn't care
// which domain the coefficients represent. Implements FIPS 203
// Algorithm 5 (ByteEncode_d).
func byteEncode[T ~[n]fieldElement](f T, d int) []byte {
	out := make([]byte, d*n/8)

	var acc uint32
	accBits := 0
	pos := 0
	for i := 0; i < n; i++ {
		acc |= uint32(f[i]) << uint(accBits)
		accBits += d
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	return out
}

// byteDecode unpacks a byte string produced by byteEncode(f, d) back into
// a polynomial. The domain of the result (coefficient or NTT) is
// determined by the type argument, not by this function: callers must
// track which one applies at each call site. Implements FIPS 203
// Algorithm 6 (ByteDecode_d).
func byteDecode[T ~[n]fieldElement](b []byte, d int) T {
	var f T
	mask := uint32(1)<<uint(d) - 1

	var acc uint32
	accBits := 0
	pos := 0
	for i := 0; i < n; i++ {
		for accBits < d {
			acc |= uint32(b[pos]) << uint(accBits)
			accBits += 8
			pos++
		}
		f[i] = fieldElement(acc & mask)
		acc >>= uint(d)
		accBits -= d
	}
	return f
}

// encodeVector packs every polynomial of a vector with byteEncode,
// concatenating the results.
func encodeVector[T ~[n]fieldElement](v [k]T, d int) []byte {
	out := make([]byte, 0, k*d*n/8)
	for i := 0; i < k; i++ {
		out = append(out, byteEncode(v[i], d)...)
	}
	return out
}

// decodeVector splits b into k equal chunks and unpacks each with
// byteDecode.
func decodeVector[T ~[n]fieldElement](b []byte, d int) [k]T {
	var v [k]T
	chunk := d * n / 8
	for i := 0; i < k; i++ {
		v[i] = byteDecode[T](b[i*chunk:(i+1)*chunk], d)
	}
	return v
}
