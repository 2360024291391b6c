package mlkem

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// fieldElemGen produces field elements uniformly over [0, q).
func fieldElemGen() gopter.Gen {
	return gen.IntRange(0, q-1).Map(func(x int) fieldElement {
		return fieldElement(x)
	})
}

func TestFieldArithmeticProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("fieldAdd result stays in [0, q)", prop.ForAll(
		func(a, b fieldElement) bool {
			r := fieldAdd(a, b)
			return r < q
		},
		fieldElemGen(), fieldElemGen(),
	))

	properties.Property("fieldSub result stays in [0, q)", prop.ForAll(
		func(a, b fieldElement) bool {
			r := fieldSub(a, b)
			return r < q
		},
		fieldElemGen(), fieldElemGen(),
	))

	properties.Property("fieldMul result stays in [0, q)", prop.ForAll(
		func(a, b fieldElement) bool {
			r := fieldMul(a, b)
			return r < q
		},
		fieldElemGen(), fieldElemGen(),
	))

	properties.Property("fieldAdd is commutative", prop.ForAll(
		func(a, b fieldElement) bool {
			return fieldAdd(a, b) == fieldAdd(b, a)
		},
		fieldElemGen(), fieldElemGen(),
	))

	properties.Property("fieldMul is commutative", prop.ForAll(
		func(a, b fieldElement) bool {
			return fieldMul(a, b) == fieldMul(b, a)
		},
		fieldElemGen(), fieldElemGen(),
	))

	properties.Property("fieldSub undoes fieldAdd", prop.ForAll(
		func(a, b fieldElement) bool {
			return fieldSub(fieldAdd(a, b), b) == a
		},
		fieldElemGen(), fieldElemGen(),
	))

	properties.Property("fieldMul distributes over fieldAdd", prop.ForAll(
		func(a, b, c fieldElement) bool {
			lhs := fieldMul(a, fieldAdd(b, c))
			rhs := fieldAdd(fieldMul(a, b), fieldMul(a, c))
			return lhs == rhs
		},
		fieldElemGen(), fieldElemGen(), fieldElemGen(),
	))

	properties.TestingRun(t)
}

func TestCompressDecompressBound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	for _, d := range []int{1, 4, 5, 10, 11} {
		d := d
		properties.Property("decompress(compress(x)) stays within rounding bound", prop.ForAll(
			func(x fieldElement) bool {
				y := compress(x, d)
				back := decompress(y, d)

				diff := int(back) - int(x)
				if diff < 0 {
					diff = -diff
				}
				// also consider the wraparound distance, since compress/
				// decompress round on a cycle of length q
				wrap := q - diff
				if wrap < diff {
					diff = wrap
				}

				bound := (q >> uint(d+1)) + 1
				return diff <= bound
			},
			fieldElemGen(),
		))
	}

	properties.TestingRun(t)
}
