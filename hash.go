package mlkem

import "crypto/sha3"

// hashG is G(x) = SHA3-512(x), split into two 32-byte halves conventionally
// named (rho, sigma).
func hashG(x []byte) (rho, sigma [32]byte) {
	sum := sha3.Sum512(x)
	copy(rho[:], sum[:32])
	copy(sigma[:], sum[32:])
	return
}

// hashH is H(x) = SHA3-256(x).
func hashH(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// hashJ is J(z, c) = SHAKE-256(z || c), truncated to 32 bytes. It is the
// implicit-rejection PRF that produces the pseudorandom shared secret
// returned when decapsulation detects a malformed ciphertext.
func hashJ(z, c []byte) [32]byte {
	h := sha3.NewSHAKE256()
	h.Write(z)
	h.Write(c)

	var out [32]byte
	h.Read(out[:])
	return out
}

// prfCBD is PRF(sigma, nonce) = SHAKE-256(sigma || nonce), squeezed to
// 64*eta bytes for consumption by samplePolyCBD.
func prfCBD(sigma []byte, nonce byte, eta int) []byte {
	h := sha3.NewSHAKE256()
	h.Write(sigma)
	h.Write([]byte{nonce})

	buf := make([]byte, 64*eta)
	h.Read(buf)
	return buf
}

// xofA returns a SHAKE-128 squeezer seeded for matrix entry A[i][j]:
// SHAKE-128(rho || byte(j) || byte(i)). FIPS 203 feeds the column before
// the row; K-PKE.KeyGen and K-PKE.Encrypt must agree on this ordering or
// the regenerated matrix in Encrypt will not match the one used in
// KeyGen, and decapsulation will silently fail to reproduce ciphertexts.
func xofA(rho []byte, i, j byte) *sha3.SHAKE {
	h := sha3.NewSHAKE128()
	h.Write(rho)
	h.Write([]byte{j, i})
	return h
}
