package mlkem

import (
	"errors"
	"io"
)

// DecapsulationKey1024 is an ML-KEM-1024 private key: the decapsulation
// side of a key pair. It encodes dk_pke || ek || H(ek) || z, per FIPS 203
// section 7.3.
type DecapsulationKey1024 struct {
	b [DecapsulationKeySize]byte
}

// EncapsulationKey1024 is an ML-KEM-1024 public key: the encapsulation
// side of a key pair.
type EncapsulationKey1024 struct {
	b [EncapsulationKeySize]byte
}

// GenerateKey1024 generates a fresh ML-KEM-1024 key pair, drawing the
// 32-byte seed d (for the K-PKE key pair) and the 32-byte implicit-
// rejection key z from rand. Implements ML-KEM.KeyGen (FIPS 203
// Algorithm 19).
func GenerateKey1024(rand io.Reader) (*DecapsulationKey1024, error) {
	var d, z [32]byte
	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand, z[:]); err != nil {
		return nil, err
	}
	return newKeyFromSeeds(d, z), nil
}

// newKeyFromSeeds builds a decapsulation key deterministically from the
// two seeds. KeyGen is deterministic given (d, z): this is the function
// every exported key-generation path funnels through.
func newKeyFromSeeds(d, z [32]byte) *DecapsulationKey1024 {
	ekPKE, dkPKE := pkeKeyGen(d)

	h := hashH(ekPKE)

	dk := &DecapsulationKey1024{}
	copy(dk.b[dkPKEOffset:], dkPKE)
	copy(dk.b[ekOffset:], ekPKE)
	copy(dk.b[hashOffset:], h[:])
	copy(dk.b[zOffset:], z[:])
	return dk
}

// NewDecapsulationKey1024 parses an encoded private key. It re-derives
// H(ek) from the embedded public key and rejects the input if it does not
// match the stored hash, catching corrupted or hand-edited key material
// before it is used.
func NewDecapsulationKey1024(b []byte) (*DecapsulationKey1024, error) {
	if len(b) != DecapsulationKeySize {
		return nil, errors.New("mlkem: invalid decapsulation key length")
	}

	dk := &DecapsulationKey1024{}
	copy(dk.b[:], b)

	ekPKE := dk.b[ekOffset : ekOffset+EncapsulationKeySize]
	h := hashH(ekPKE)
	if !ctEqual(h[:], dk.b[hashOffset:hashOffset+32]) {
		return nil, errors.New("mlkem: decapsulation key hash mismatch")
	}
	return dk, nil
}

// Bytes returns the encoded private key: dk_pke || ek || H(ek) || z.
func (dk *DecapsulationKey1024) Bytes() []byte {
	out := make([]byte, DecapsulationKeySize)
	copy(out, dk.b[:])
	return out
}

// EncapsulationKey returns the public half of the key pair.
func (dk *DecapsulationKey1024) EncapsulationKey() *EncapsulationKey1024 {
	ek := &EncapsulationKey1024{}
	copy(ek.b[:], dk.b[ekOffset:ekOffset+EncapsulationKeySize])
	return ek
}

// NewEncapsulationKey1024 parses an encoded public key.
func NewEncapsulationKey1024(b []byte) (*EncapsulationKey1024, error) {
	if len(b) != EncapsulationKeySize {
		return nil, errors.New("mlkem: invalid encapsulation key length")
	}
	ek := &EncapsulationKey1024{}
	copy(ek.b[:], b)
	return ek, nil
}

// Bytes returns the encoded public key.
func (ek *EncapsulationKey1024) Bytes() []byte {
	out := make([]byte, EncapsulationKeySize)
	copy(out, ek.b[:])
	return out
}

// Equal reports whether ek and other encode the same public key.
func (ek *EncapsulationKey1024) Equal(other *EncapsulationKey1024) bool {
	if other == nil {
		return false
	}
	return ek.b == other.b
}

// Encapsulate draws a fresh 32-byte message from rand and derives a
// ciphertext and shared secret from it. Implements ML-KEM.Encaps (FIPS
// 203 Algorithm 20). Encaps is deterministic in (ek, m); randomness
// enters only through m.
func (ek *EncapsulationKey1024) Encapsulate(rand io.Reader) (ciphertext []byte, sharedSecret [32]byte, err error) {
	var m [32]byte
	if _, err := io.ReadFull(rand, m[:]); err != nil {
		return nil, [32]byte{}, err
	}
	ct, ss := encapsulate(ek.b[:], m)
	return ct, ss, nil
}

// encapsulate is the deterministic core of Encapsulate, split out so KAT
// vectors can drive it directly with a fixed message.
func encapsulate(ekPKE []byte, m [32]byte) (ciphertext []byte, sharedSecret [32]byte) {
	h := hashH(ekPKE)

	var gInput [64]byte
	copy(gInput[:32], m[:])
	copy(gInput[32:], h[:])
	sharedKey, coins := hashG(gInput[:])

	c := pkeEncrypt(ekPKE, m, coins)
	return c, sharedKey
}

// Decapsulate recovers the shared secret encapsulated in ciphertext.
// Implements ML-KEM.Decaps (FIPS 203 Algorithm 21) with the FO⊥ implicit-
// rejection transform: if ciphertext does not re-encrypt to itself, the
// returned value is the pseudorandom SHAKE-256(z || ciphertext) rather
// than an error, so that no part of this call is a chosen-ciphertext
// oracle. The only error path is a malformed ciphertext length, which is
// a caller bug, not a cryptographic failure.
func (dk *DecapsulationKey1024) Decapsulate(ciphertext []byte) ([32]byte, error) {
	if len(ciphertext) != CiphertextSize {
		return [32]byte{}, errors.New("mlkem: invalid ciphertext length")
	}

	dkPKE := dk.b[dkPKEOffset : dkPKEOffset+pkeDecryptionKeySize]
	ekPKE := dk.b[ekOffset : ekOffset+EncapsulationKeySize]
	h := dk.b[hashOffset : hashOffset+32]
	z := dk.b[zOffset : zOffset+32]

	mPrime := pkeDecrypt(dkPKE, ciphertext)

	var gInput [64]byte
	copy(gInput[:32], mPrime[:])
	copy(gInput[32:], h)
	kPrime, coinsPrime := hashG(gInput[:])

	cPrime := pkeEncrypt(ekPKE, mPrime, coinsPrime)

	kReject := hashJ(z, ciphertext)

	mask := ctEqualMask(cPrime, ciphertext)
	var out [32]byte
	ctSelect(&out, kReject, kPrime, mask)
	return out, nil
}
