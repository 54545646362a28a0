// Implements binary BCH remainder calculation for short format fields.
package bch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is the cause of every error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// BCH Remainder Calculation
type BCH struct {
	GenPoly   uint32
	PolyWidth int
}

// Given a generator polynomial, calculate the polynomial width.
func NewBCH(genPoly uint32) (bch BCH) {
	bch.GenPoly = genPoly

	for p := genPoly; p > 0; p >>= 1 {
		bch.PolyWidth++
	}

	return
}

func (bch BCH) String() string {
	return fmt.Sprintf("{GenPoly:%X PolyWidth:%d}", bch.GenPoly, bch.PolyWidth)
}

// Remainder divides v, shifted up by the generator's degree, by the
// generator polynomial over GF(2).
func (bch BCH) Remainder(v uint32, valueWidth int) (uint32, error) {
	return Remainder(v, valueWidth, bch.GenPoly, bch.PolyWidth)
}

// Table returns the remainder of every valueWidth-bit value, indexed by
// value. Intended for the small widths format fields use.
func (bch BCH) Table(valueWidth int) ([]uint32, error) {
	if _, err := bch.Remainder(0, valueWidth); err != nil {
		return nil, err
	}

	table := make([]uint32, 1<<uint(valueWidth))
	for v := range table {
		r, err := bch.Remainder(uint32(v), valueWidth)
		if err != nil {
			return nil, err
		}
		table[v] = r
	}

	return table, nil
}

// Remainder divides the valueWidth-bit value v, shifted up by polyWidth-1
// bits, by the generator polynomial p and returns the remainder, which
// occupies fewer than polyWidth bits. The division register must fit in 32
// bits and the generator's top bit must sit at position polyWidth-1.
func Remainder(v uint32, valueWidth int, p uint32, polyWidth int) (uint32, error) {
	switch {
	case valueWidth < 1:
		return 0, errors.Wrapf(ErrInvalidArgument, "bch: value width %d", valueWidth)
	case polyWidth <= valueWidth:
		return 0, errors.Wrapf(ErrInvalidArgument, "bch: polynomial width %d not above value width %d", polyWidth, valueWidth)
	case valueWidth+polyWidth-1 > 32:
		return 0, errors.Wrapf(ErrInvalidArgument, "bch: %d bit register exceeds 32 bits", valueWidth+polyWidth-1)
	case p>>uint(polyWidth-1) != 1:
		return 0, errors.Wrapf(ErrInvalidArgument, "bch: generator %#x top bit not at %d", p, polyWidth-1)
	case v>>uint(valueWidth) != 0:
		return 0, errors.Wrapf(ErrInvalidArgument, "bch: value %#x wider than %d bits", v, valueWidth)
	}

	v <<= uint(polyWidth - 1)

	// Align the generator under each value bit from the top down. The XOR
	// leaves bits above position i+polyWidth-1 untouched, so it reduces
	// the register exactly when it clears the current leading bit, which
	// is what the numeric comparison tests.
	for i := valueWidth - 1; i >= 0; i-- {
		if test := v ^ p<<uint(i); test < v {
			v = test
		}
	}

	return v, nil
}
