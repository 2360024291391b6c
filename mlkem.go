// Package mlkem implements ML-KEM-1024 (Module-Lattice Key-Encapsulation
// Mechanism), the post-quantum KEM standardized by NIST as FIPS 203.
//
// ML-KEM-1024 targets NIST security category 5 (comparable to AES-256). It
// is the sole parameter set this package implements; smaller parameter
// sets (ML-KEM-512, ML-KEM-768) are out of scope.
//
// Basic usage:
//
//	dk, err := mlkem.GenerateKey1024(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	ek := dk.EncapsulationKey()
//
//	ct, sharedSecret, err := ek.Encapsulate(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//
//	sharedSecret2, err := dk.Decapsulate(ct)
//	if err != nil {
//	    // handle error
//	}
//	// sharedSecret == sharedSecret2
//
// Decapsulate never reports a cryptographic failure on malformed
// ciphertext: the FO⊥ transform guarantees it always returns a 32-byte
// value, pseudorandom when the ciphertext was invalid, so that no CCA
// oracle is exposed on the wire. The only errors Decapsulate and
// Encapsulate can return come from malformed input lengths or a failing
// randomness source.
package mlkem

// Global ML-KEM-1024 constants from FIPS 203.
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the modulus: q = 2^8 * 13 + 1 = 3329.
	q = 3329

	// k is the module rank for ML-KEM-1024.
	k = 4

	// eta1 is the CBD parameter used when sampling the secret and error
	// vectors during K-PKE key generation.
	eta1 = 2

	// eta2 is the CBD parameter used when sampling the error terms during
	// K-PKE encryption.
	eta2 = 2

	// du, dv are the compression widths used for the ciphertext's u and v
	// components.
	du = 11
	dv = 5

	// SeedSize is the size in bytes of a single random seed (d, z, or the
	// encapsulation message m).
	SeedSize = 32

	// SharedKeySize is the size in bytes of the shared secret produced by
	// Encapsulate/Decapsulate.
	SharedKeySize = 32
)

// Derived sizes, all fixed and known at compile time.
const (
	encodingSize12 = n * 12 / 8 // 384
	encodingSizeDu = n * du / 8 // 352
	encodingSizeDv = n * dv / 8 // 160

	// pkeEncryptionKeySize is the size of the K-PKE public key:
	// ByteEncode12(t-hat) || rho.
	pkeEncryptionKeySize = k*encodingSize12 + SeedSize // 1536 + 32 = 1568

	// pkeDecryptionKeySize is the size of the K-PKE private key:
	// ByteEncode12(s), with s in coefficient domain.
	pkeDecryptionKeySize = k * encodingSize12 // 1536

	// EncapsulationKeySize is the size in bytes of an ML-KEM-1024
	// encapsulation (public) key.
	EncapsulationKeySize = pkeEncryptionKeySize // 1568

	// DecapsulationKeySize is the size in bytes of an ML-KEM-1024
	// decapsulation (private) key: dk_pke || ek || H(ek) || z.
	DecapsulationKeySize = pkeDecryptionKeySize + EncapsulationKeySize + 32 + 32 // 3168

	// CiphertextSize is the size in bytes of an ML-KEM-1024 ciphertext:
	// c1 (Compress_du(u)) || c2 (Compress_dv(v)).
	CiphertextSize = k*encodingSizeDu + encodingSizeDv // 1568
)

// Offsets into the encoded decapsulation key, per FIPS 203 section 7.3.
const (
	dkPKEOffset  = 0
	ekOffset     = dkPKEOffset + pkeDecryptionKeySize // 1536
	hashOffset   = ekOffset + EncapsulationKeySize     // 3104
	zOffset      = hashOffset + 32                     // 3136
)
