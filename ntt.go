package mlkem

// primitiveRoot is zeta = 17, a primitive 256th root of unity mod q. The
// ring R_q = Z_q[X]/(X^256+1) splits via zeta into 128 degree-2 factors,
// so the NTT below is intentionally incomplete: it stops at butterfly
// length 2 rather than length 1, and pointwise multiplication operates on
// 128 degree-2 blocks rather than single coefficients.
const primitiveRoot = 17

// zetas[k] = zeta^bitrev7(k) mod q, for k = 0..127. Index 0 is unused by
// the transform (the loops below start at k=1) but is filled in for
// completeness. gammas[i] = zeta^(2*bitrev7(i)+1) mod q, consumed by the
// degree-2 base-case multiplication below. Both tables are computed once
// at package init from the generator zeta = 17 rather than transcribed,
// so they can be checked against FIPS 203 Appendix A by direct
// recomputation instead of by eye.
var (
	zetas  [n / 2]fieldElement
	gammas [n / 2]fieldElement
)

func init() {
	for k := 0; k < n/2; k++ {
		zetas[k] = powMod(primitiveRoot, bitrev7(k))
		gammas[k] = powMod(primitiveRoot, 2*bitrev7(k)+1)
	}
}

// bitrev7 reverses the low 7 bits of x.
func bitrev7(x int) int {
	var r int
	for i := 0; i < 7; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// powMod computes base^exp mod q by repeated squaring.
func powMod(base fieldElement, exp int) fieldElement {
	result := fieldElement(1)
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = fieldMul(result, b)
		}
		b = fieldMul(b, b)
		exp >>= 1
	}
	return result
}

// ntt performs the (incomplete) Number Theoretic Transform on a
// polynomial. The input is in coefficient domain; the output is in NTT
// domain, with each pair of adjacent coefficients representing one of the
// 128 degree-2 factors. Implements FIPS 203 Algorithm 9.
func ntt(f ringElement) nttElement {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++

			fLo := f[start : start+length]
			fHi := f[start+length : start+2*length]
			for j := 0; j < length; j++ {
				t := fieldMul(zeta, fHi[j])
				fHi[j] = fieldSub(fLo[j], t)
				fLo[j] = fieldAdd(fLo[j], t)
			}
		}
	}
	return nttElement(f)
}

// invNTT performs the inverse Number Theoretic Transform. Input is in NTT
// domain, output is in coefficient domain. Implements FIPS 203
// Algorithm 10.
func invNTT(f nttElement) ringElement {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--

			fLo := f[start : start+length]
			fHi := f[start+length : start+2*length]
			for j := 0; j < length; j++ {
				t := fLo[j]
				fLo[j] = fieldAdd(t, fHi[j])
				fHi[j] = fieldMul(zeta, fieldSub(fHi[j], t))
			}
		}
	}

	const nInv = 3303 // 128^(-1) mod q: one factor of 2 per each of the 7 layers
	for i := range f {
		f[i] = fieldMul(f[i], nInv)
	}
	return ringElement(f)
}

// nttMul performs the pointwise multiplication of two NTT-domain
// polynomials via 128 degree-2 base-case multiplications. Implements
// FIPS 203 Algorithm 12 (BaseCaseMultiply), applied to all 128 pairs.
func nttMul(a, b nttElement) nttElement {
	var c nttElement
	for i := 0; i < n/2; i++ {
		gamma := gammas[i]
		a0, a1 := a[2*i], a[2*i+1]
		b0, b1 := b[2*i], b[2*i+1]

		c[2*i] = fieldAdd(fieldMul(a0, b0), fieldMul(gamma, fieldMul(a1, b1)))
		c[2*i+1] = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	}
	return c
}
