// Package symbol describes the square symbol geometries supported by the
// codeword generator.
package symbol

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Size pairs a square symbol's side length with its codeword capacities.
type Size struct {
	Side     int // modules per side, including the finder pattern
	DataSize int // data codewords, padding included
	ECCSize  int // redundancy codewords
}

// Sizes lists the supported square symbols in increasing capacity.
var Sizes = []Size{
	{10, 3, 5},
	{12, 5, 7},
	{14, 8, 10},
	{16, 12, 12},
	{18, 18, 14},
	{20, 22, 18},
	{22, 30, 20},
}

// Total returns the combined codeword count of the symbol.
func (s Size) Total() int {
	return s.DataSize + s.ECCSize
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Side, s.Side)
}

// Fit returns the smallest symbol whose data capacity holds n payload
// bytes.
func Fit(n int) (Size, error) {
	if n < 0 {
		return Size{}, errors.Errorf("symbol: negative payload length %d", n)
	}

	for _, s := range Sizes {
		if s.DataSize >= n {
			return s, nil
		}
	}

	return Size{}, errors.Errorf("symbol: no size fits %d payload bytes", n)
}

// BySide returns the symbol with the given side length.
func BySide(side int) (Size, error) {
	for _, s := range Sizes {
		if s.Side == side {
			return s, nil
		}
	}

	return Size{}, errors.Errorf("symbol: unknown size %dx%d", side, side)
}
