package gf

import (
	"testing"
	"testing/quick"

	"github.com/boombuler/barcode/utils"
)

const (
	Order = 256
	Poly  = 301
	Alpha = 2
)

var field = NewField(Order, Poly, Alpha)

func TestProducts(t *testing.T) {
	products := []struct{ x, y, product byte }{
		{2, 4, 8},
		{3, 7, 9},
		{16, 16, 45},
		{45, 91, 202},
		{142, 164, 180},
		{255, 255, 52},
	}

	for _, p := range products {
		if got := field.Mul(p.x, p.y); got != p.product {
			t.Fatalf("Mul(%d, %d) Expected: %d Got: %d\n", p.x, p.y, p.product, got)
		}
	}
}

func TestPowers(t *testing.T) {
	powers := []struct {
		x     byte
		n     int
		power byte
	}{
		{5, 0, 1},
		{0, 0, 1},
		{7, 1, 7},
		{0, 12, 0},
		{2, 8, 45},
		{2, 15, 228},
		{3, 4, 17},
		{2, 255, 1},
		{6, 100, 249},
	}

	for _, p := range powers {
		if got := field.Pow(p.x, p.n); got != p.power {
			t.Fatalf("Pow(%d, %d) Expected: %d Got: %d\n", p.x, p.n, p.power, got)
		}
	}
}

func TestIdentities(t *testing.T) {
	for x := 0; x < Order; x++ {
		x := byte(x)
		if field.Mul(x, 1) != x {
			t.Fatalf("Mul(%d, 1) != %d\n", x, x)
		}
		if field.Mul(x, 0) != 0 {
			t.Fatalf("Mul(%d, 0) != 0\n", x)
		}
		if field.Add(x, 0) != x {
			t.Fatalf("Add(%d, 0) != %d\n", x, x)
		}
		if field.Add(x, x) != 0 {
			t.Fatalf("Add(%d, %d) != 0\n", x, x)
		}
	}
}

func TestInverses(t *testing.T) {
	if field.Inv(0) != 0 {
		t.Fatalf("Inv(0) Expected: 0 Got: %d\n", field.Inv(0))
	}

	for x := 1; x < Order; x++ {
		x := byte(x)
		if got := field.Mul(x, field.Inv(x)); got != 1 {
			t.Fatalf("Mul(%d, Inv(%d)) Expected: 1 Got: %d\n", x, x, got)
		}
	}
}

func TestLogExp(t *testing.T) {
	if field.Log(0) != -1 {
		t.Fatalf("Log(0) Expected: -1 Got: %d\n", field.Log(0))
	}
	if field.Exp(-1) != 0 {
		t.Fatalf("Exp(-1) Expected: 0 Got: %d\n", field.Exp(-1))
	}

	for x := 1; x < Order; x++ {
		x := byte(x)
		if field.Exp(field.Log(x)) != x {
			t.Fatalf("Exp(Log(%d)) != %d\n", x, x)
		}
	}

	for e := 0; e < Order-1; e++ {
		if field.Log(field.Exp(e)) != e {
			t.Fatalf("Log(Exp(%d)) != %d\n", e, e)
		}
	}
}

// Multiplication commutes, associates and distributes over addition, and
// exponents fold modulo the multiplicative group's order.
func TestFieldLaws(t *testing.T) {
	err := quick.Check(func(x, y, z byte) bool {
		commutative := field.Mul(x, y) == field.Mul(y, x)
		associative := field.Mul(x, field.Mul(y, z)) == field.Mul(field.Mul(x, y), z)
		distributive := field.Mul(x, field.Add(y, z)) == field.Add(field.Mul(x, y), field.Mul(x, z))
		return commutative && associative && distributive
	}, nil)

	if err != nil {
		t.Fatal("Error testing field laws:", err)
	}

	err = quick.Check(func(x byte, n uint8) bool {
		return field.Pow(x, int(n)+Order-1) == field.Pow(x, int(n)) || x == 0
	}, nil)

	if err != nil {
		t.Fatal("Error testing exponent period:", err)
	}
}

func TestPowMatchesProduct(t *testing.T) {
	err := quick.Check(func(x byte, n uint8) bool {
		product := byte(1)
		for i := 0; i < int(n); i++ {
			product = field.Mul(product, x)
		}
		return field.Pow(x, int(n)) == product
	}, nil)

	if err != nil {
		t.Fatal("Error testing power against repeated product:", err)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic\n", name)
		}
	}()
	fn()
}

func TestInvalidFields(t *testing.T) {
	expectPanic(t, "order too large", func() { NewField(512, 301, 2) })
	expectPanic(t, "polynomial below order", func() { NewField(256, 255, 2) })
	expectPanic(t, "reducible polynomial", func() { NewField(256, 257, 2) })
	expectPanic(t, "non-generator", func() { NewField(256, 301, 1) })
	expectPanic(t, "negative exponent", func() { field.Pow(2, -1) })
}

func BenchmarkMul(b *testing.B) {
	x, y := byte(142), byte(164)
	for n := 0; n < b.N; n++ {
		field.Mul(x, y)
	}
}

// The field tables must agree with an independent implementation of the
// same polynomial.
func TestTablesMatchReference(t *testing.T) {
	ref := utils.NewGaloisField(Poly, Order, 1)

	for e := 0; e < Order-1; e++ {
		if byte(ref.ALogTbl[e]) != field.Exp(e) {
			t.Fatalf("antilog[%d] Expected: %d Got: %d\n", e, ref.ALogTbl[e], field.Exp(e))
		}
	}

	for x := 0; x < Order; x++ {
		for y := 0; y < Order; y++ {
			ours := field.Mul(byte(x), byte(y))
			theirs := ref.Multiply(x, y)
			if byte(theirs) != ours {
				t.Fatalf("Mul(%d, %d) Expected: %d Got: %d\n", x, y, theirs, ours)
			}
		}
	}
}
