// SPDX-License-Identifier: MIT

package pchip

import "errors"

var (
	// ErrBadInput indicates mismatched lengths, fewer than two knots,
	// non-finite values or x not strictly increasing.
	ErrBadInput = errors.New("pchip: invalid knots")

	// ErrNotMonotone indicates y is not strictly monotone in x; the
	// inverse would not be single-valued.
	ErrNotMonotone = errors.New("pchip: y not strictly monotone")

	// ErrOutOfRange is returned by Forward/Inverse for arguments outside
	// the observed closed interval (or NaN). It signals "no validated
	// data here", never a reason to extrapolate.
	ErrOutOfRange = errors.New("pchip: argument outside validated interval")
)
