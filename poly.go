package mlkem

// vector is a length-k array of polynomials in coefficient domain.
type vector [k]ringElement

// nttVector is a length-k array of polynomials in NTT domain.
type nttVector [k]nttElement

// matrix is a k*k array of polynomials in NTT domain, stored row-major:
// entry (i, j) lives at index i*k+j.
type matrix [k * k]nttElement

// vecAdd adds two vectors component-wise. Generic over vector and
// nttVector since addition commutes with the NTT.
func vecAdd[T ~[n]fieldElement](a, b [k]T) (c [k]T) {
	for i := range c {
		c[i] = polyAdd(a[i], b[i])
	}
	return c
}

// dot computes the NTT-domain inner product of two vectors,
// sum_i a[i]*b[i], accumulating with nttMul and polyAdd.
func dot(a, b nttVector) nttElement {
	var acc nttElement
	for i := range a {
		acc = polyAdd(acc, nttMul(a[i], b[i]))
	}
	return acc
}

// matVec computes A * v, where entry (i, j) of A multiplies v[j] and row
// i of the result accumulates over j. A is stored in NTT domain.
func matVec(a matrix, v nttVector) (out nttVector) {
	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < k; j++ {
			acc = polyAdd(acc, nttMul(a[i*k+j], v[j]))
		}
		out[i] = acc
	}
	return out
}

// matVecTranspose computes A^T * v: entry (j, i) of A multiplies v[j],
// accumulating into row i of the result. It differs from matVec only in
// which index of A selects the row being accumulated into.
func matVecTranspose(a matrix, v nttVector) (out nttVector) {
	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < k; j++ {
			acc = polyAdd(acc, nttMul(a[j*k+i], v[j]))
		}
		out[i] = acc
	}
	return out
}

// nttVec transforms every polynomial of a vector to NTT domain.
func nttVec(v vector) (out nttVector) {
	for i := range v {
		out[i] = ntt(v[i])
	}
	return out
}

// invNTTVec transforms every polynomial of an NTT-domain vector back to
// coefficient domain.
func invNTTVec(v nttVector) (out vector) {
	for i := range v {
		out[i] = invNTT(v[i])
	}
	return out
}
