package mlkem

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// boundedRingElementGen produces polynomials whose coefficients are
// uniform over [0, 2^d), matching the domain byteEncode_d/byteDecode_d
// are defined on for d < 12 (sub-field-sized widths used for compressed
// ciphertext components, not full field elements).
func boundedRingElementGen(d int) gopter.Gen {
	max := (1 << uint(d)) - 1
	return gen.SliceOfN(n, gen.IntRange(0, max)).Map(func(xs []int) ringElement {
		var f ringElement
		for i, x := range xs {
			f[i] = fieldElement(x)
		}
		return f
	})
}

func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	for _, d := range []int{4, 5, 10, 11, 12} {
		d := d
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			var g gopter.Gen
			if d == 12 {
				g = ringElementGen()
			} else {
				g = boundedRingElementGen(d)
			}

			parameters := gopter.DefaultTestParameters()
			properties := gopter.NewProperties(parameters)

			properties.Property("byteDecode undoes byteEncode", prop.ForAll(
				func(f ringElement) bool {
					encoded := byteEncode(f, d)
					decoded := byteDecode[ringElement](encoded, d)
					return decoded == f
				},
				g,
			))

			properties.TestingRun(t)
		})
	}
}

func TestEncodeVectorDecodeVectorRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("decodeVector undoes encodeVector at d=12", prop.ForAll(
		func(a, b, c, e ringElement) bool {
			v := vector{a, b, c, e}
			encoded := encodeVector(v, 12)
			decoded := decodeVector[ringElement](encoded, 12)
			return decoded == v
		},
		ringElementGen(), ringElementGen(), ringElementGen(), ringElementGen(),
	))

	properties.TestingRun(t)
}
