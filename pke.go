package mlkem

// K-PKE is the IND-CPA-secure inner public-key encryption scheme that the
// ML-KEM wrapper in kem.go turns into an IND-CCA2 KEM via the FO⊥
// transform. Its KeyGen, Encrypt, and Decrypt are never exposed directly:
// a CPA-secure PKE used as a KEM without the wrapper is not
// chosen-ciphertext secure.

// pkeKeyGen implements K-PKE.KeyGen (FIPS 203 Algorithm 13). d is the
// 32-byte seed. It returns the encoded public key ek_pke (t-hat encoded
// with 12 bits per coefficient, followed by rho) and the encoded private
// key dk_pke (s encoded in coefficient domain with 12 bits per
// coefficient).
func pkeKeyGen(d [32]byte) (ekPKE, dkPKE []byte) {
	seed := make([]byte, 0, 33)
	seed = append(seed, d[:]...)
	seed = append(seed, byte(k))
	rho, sigma := hashG(seed)

	a := expandMatrix(rho[:])

	nonce := byte(0)
	var s vector
	for i := 0; i < k; i++ {
		s[i] = samplePolyCBD(prfCBD(sigma[:], nonce, eta1), eta1)
		nonce++
	}
	var e vector
	for i := 0; i < k; i++ {
		e[i] = samplePolyCBD(prfCBD(sigma[:], nonce, eta1), eta1)
		nonce++
	}

	sHat := nttVec(s)
	eHat := nttVec(e)
	tHat := vecAdd(matVec(a, sHat), eHat)

	ekPKE = make([]byte, 0, pkeEncryptionKeySize)
	ekPKE = append(ekPKE, encodeVector(tHat, 12)...)
	ekPKE = append(ekPKE, rho[:]...)

	// s is stored in coefficient domain, not NTT domain: Decrypt applies
	// NTT to it after decoding (see pkeDecrypt), matching the secret-key
	// layout where s and t-hat deliberately live in different domains.
	dkPKE = encodeVector(s, 12)
	return ekPKE, dkPKE
}

// expandMatrix regenerates Â from the public seed rho. K-PKE.KeyGen and
// K-PKE.Encrypt both call this, and must, for the ciphertext produced by
// Encrypt to be the one Decrypt (and the re-encryption check inside
// Decapsulate) expects.
func expandMatrix(rho []byte) matrix {
	var a matrix
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a[i*k+j] = sampleNTT(rho, byte(i), byte(j))
		}
	}
	return a
}

// pkeEncrypt implements K-PKE.Encrypt (FIPS 203 Algorithm 14). ekPKE is
// the encoded public key, m the 32-byte message, and coins the 32-byte
// encryption randomness r. It returns the ciphertext c = c1 || c2.
func pkeEncrypt(ekPKE []byte, m [32]byte, coins [32]byte) []byte {
	tHat := decodeVector[nttElement](ekPKE[:k*encodingSize12], 12)
	rho := ekPKE[k*encodingSize12:]

	a := expandMatrix(rho)

	nonce := byte(0)
	var r vector
	for i := 0; i < k; i++ {
		r[i] = samplePolyCBD(prfCBD(coins[:], nonce, eta1), eta1)
		nonce++
	}
	var e1 vector
	for i := 0; i < k; i++ {
		e1[i] = samplePolyCBD(prfCBD(coins[:], nonce, eta2), eta2)
		nonce++
	}
	e2 := samplePolyCBD(prfCBD(coins[:], nonce, eta2), eta2)

	rHat := nttVec(r)

	u := vecAdd(invNTTVec(matVecTranspose(a, rHat)), e1)

	tr := dot(tHat, rHat)
	mu := encodeMessage(m)
	v := polyAdd(polyAdd(invNTT(tr), e2), mu)

	c1 := encodeVector(compressVector(u, du), du)
	c2 := byteEncode(compressPoly(v, dv), dv)

	c := make([]byte, 0, CiphertextSize)
	c = append(c, c1...)
	c = append(c, c2...)
	return c
}

// pkeDecrypt implements K-PKE.Decrypt (FIPS 203 Algorithm 15). dkPKE is
// the encoded private key, c the ciphertext. It returns the recovered
// 32-byte message; there is no failure case, since any ciphertext of the
// right length decrypts to some message, correct or not.
func pkeDecrypt(dkPKE, c []byte) [32]byte {
	c1 := c[:k*encodingSizeDu]
	c2 := c[k*encodingSizeDu:]

	u := decompressVector(decodeVector[ringElement](c1, du), du)
	v := decompressPoly(byteDecode[ringElement](c2, dv), dv)

	sHat := nttVec(decodeVector[ringElement](dkPKE, 12))

	uHat := nttVec(u)
	w := polySub(v, invNTT(dot(sHat, uHat)))

	return decodeMessage(w)
}
