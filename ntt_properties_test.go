package mlkem

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func ringElementGen() gopter.Gen {
	return gen.SliceOfN(n, gen.IntRange(0, q-1)).Map(func(xs []int) ringElement {
		var f ringElement
		for i, x := range xs {
			f[i] = fieldElement(x)
		}
		return f
	})
}

func TestNTTRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("invNTT undoes ntt", prop.ForAll(
		func(f ringElement) bool {
			return invNTT(ntt(f)) == f
		},
		ringElementGen(),
	))

	properties.TestingRun(t)
}

// schoolbookMul multiplies two polynomials in R_q = Z_q[X]/(X^256+1) the
// naive O(n^2) way, folding X^256 = -1. It exists only so the NTT's
// pointwise multiply can be checked against an independent reference.
func schoolbookMul(a, b ringElement) ringElement {
	var wide [2 * n]fieldElement
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			wide[i+j] = fieldAdd(wide[i+j], fieldMul(a[i], b[j]))
		}
	}
	var out ringElement
	for i := 0; i < n; i++ {
		out[i] = fieldSub(wide[i], wide[i+n])
	}
	return out
}

func TestNTTMatchesSchoolbookMultiplication(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("NTT convolution equals schoolbook multiplication mod X^256+1", prop.ForAll(
		func(a, b ringElement) bool {
			viaNTT := invNTT(nttMul(ntt(a), ntt(b)))
			viaSchoolbook := schoolbookMul(a, b)
			return viaNTT == viaSchoolbook
		},
		ringElementGen(), ringElementGen(),
	))

	properties.TestingRun(t)
}
