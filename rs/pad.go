package rs

import "github.com/pkg/errors"

// padSentinel marks the end of data. Positions after it carry values from
// the 253-state randomizing sequence so unused capacity never repeats.
const padSentinel = 129

// Pad extends data to targetSize codewords. The first pad position holds
// the end of data sentinel, the rest follow the randomizing sequence for
// their 1-based position. The result is a copy, even when no padding is
// required.
func Pad(data []byte, targetSize int) ([]byte, error) {
	if targetSize < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "rs: target size %d", targetSize)
	}
	if len(data) > targetSize {
		return nil, errors.Wrapf(ErrInvalidArgument, "rs: %d data bytes exceed target size %d", len(data), targetSize)
	}

	padded := make([]byte, len(data), targetSize)
	copy(padded, data)

	for i := len(data); i < targetSize; i++ {
		if i == len(data) {
			padded = append(padded, padSentinel)
			continue
		}
		padded = append(padded, padValue(i+1))
	}

	return padded, nil
}

// padValue computes the randomized pad codeword for a 1-based position.
func padValue(pos int) byte {
	p := (149*pos%253 + 130) % 254
	if p == 0 {
		return 254
	}
	return byte(p)
}
