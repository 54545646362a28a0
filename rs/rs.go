// Package rs generates Reed-Solomon redundancy codewords for ECC200 style
// symbols over GF(2^8) with field polynomial 301.
package rs

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/bemasher/symbolecc/gf"
)

// Field parameters shared by all ECC200 symbols.
const (
	FieldOrder = 256
	FieldPoly  = 301
	Generator  = 2
)

// ErrInvalidArgument is the cause of every error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Factor tables for the redundancy lengths used by the square symbol
// family, as published in the symbology reference tables. The builder
// reproduces each of these exactly.
var precomputedFactors = map[int][]byte{
	5:  {228, 48, 15, 111, 62},
	7:  {23, 68, 144, 134, 240, 92, 254},
	10: {28, 24, 185, 166, 223, 248, 116, 255, 110, 61},
	12: {41, 153, 158, 91, 61, 42, 142, 213, 97, 178, 100, 242},
	14: {156, 97, 192, 252, 95, 9, 157, 119, 138, 45, 18, 186, 83, 185},
	18: {83, 195, 100, 39, 188, 75, 66, 61, 241, 213, 109, 129, 94, 254, 225, 48, 90, 188},
	20: {15, 195, 244, 9, 233, 71, 168, 2, 188, 160, 153, 145, 253, 79, 108, 82, 27, 174, 186, 172},
}

// An Encoder computes Reed-Solomon redundancy bytes. It owns the field
// tables and a cache of generator polynomial factor tables keyed by
// redundancy length. Methods are safe for concurrent use.
type Encoder struct {
	field *gf.Field

	factorMu sync.RWMutex
	factors  map[int][]byte
}

// NewEncoder returns an encoder over GF(256) with the factor tables of the
// square symbol sizes already cached.
func NewEncoder() *Encoder {
	enc := &Encoder{
		field:   gf.NewField(FieldOrder, FieldPoly, Generator),
		factors: make(map[int][]byte, len(precomputedFactors)),
	}
	// Cache entries are shared and never mutated after insertion.
	for size, factors := range precomputedFactors {
		enc.factors[size] = factors
	}
	return enc
}

// FactorTable returns the coefficients of the degree eccSize generator
// polynomial, constant term first, excluding the implicit leading 1.
// Tables are built once per redundancy length and cached for the life of
// the encoder. The returned slice is a copy and is the caller's to keep.
func (enc *Encoder) FactorTable(eccSize int) ([]byte, error) {
	if eccSize < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "rs: ecc size %d", eccSize)
	}

	enc.factorMu.RLock()
	factors, ok := enc.factors[eccSize]
	enc.factorMu.RUnlock()

	if !ok {
		factors = enc.buildFactorTable(eccSize)

		enc.factorMu.Lock()
		// A racing build of the same length produces an identical table,
		// keep whichever landed first.
		if prev, ok := enc.factors[eccSize]; ok {
			factors = prev
		} else {
			enc.factors[eccSize] = factors
		}
		enc.factorMu.Unlock()
	}

	table := make([]byte, len(factors))
	copy(table, factors)
	return table, nil
}

// buildFactorTable expands the product of (x + 2^i) for i in 1..eccSize.
// factors[j] holds the coefficient of x^j. The monic leading coefficient
// is carried explicitly during construction and dropped from the result.
func (enc *Encoder) buildFactorTable(eccSize int) []byte {
	factors := make([]byte, eccSize+1)
	factors[0] = 1

	for i := 1; i <= eccSize; i++ {
		root := enc.field.Pow(Generator, i)
		// Multiply by (x + root) from the top degree down so each
		// coefficient reads the previous iteration's values.
		for j := i; j > 0; j-- {
			factors[j] = enc.field.Add(factors[j-1], enc.field.Mul(factors[j], root))
		}
		factors[0] = enc.field.Mul(factors[0], root)
	}

	return factors[:eccSize]
}

// Encode divides the codeword, shifted up by the redundancy length, by the
// generator polynomial described by factors. The remainder is returned in
// transmission order, highest degree coefficient first.
func (enc *Encoder) Encode(codeword, factors []byte) ([]byte, error) {
	if len(codeword) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "rs: empty codeword")
	}
	if len(factors) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "rs: empty factor table")
	}

	eccSize := len(factors)
	ecc := make([]byte, eccSize)

	for _, d := range codeword {
		t := d ^ ecc[0]
		// One ascending sweep of the remainder register. ecc[j+1] is read
		// before it is written, so it still holds the previous byte's
		// value, and the final slot shifts in a zero.
		for j := 0; j < eccSize; j++ {
			next := byte(0)
			if j+1 < eccSize {
				next = ecc[j+1]
			}
			ecc[j] = next ^ enc.field.Mul(t, factors[eccSize-1-j])
		}
	}

	return ecc, nil
}

// Codeword pads data to dataSize and appends eccSize redundancy bytes,
// returning the complete codeword sequence of length dataSize+eccSize.
func (enc *Encoder) Codeword(data []byte, dataSize, eccSize int) ([]byte, error) {
	padded, err := Pad(data, dataSize)
	if err != nil {
		return nil, err
	}

	factors, err := enc.FactorTable(eccSize)
	if err != nil {
		return nil, err
	}

	ecc, err := enc.Encode(padded, factors)
	if err != nil {
		return nil, err
	}

	return append(padded, ecc...), nil
}
