// This file provides the conversion between unsigned integers and the
// fixed-width binary strings used as case keys and output literals.

package main

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the widest bit string the codec can represent.
const MaxWidth = 64

// ErrWidth is returned when a bit width lies outside [0, MaxWidth].
var ErrWidth = errors.New("bit width out of range")

// A BitString is a most-significant-bit-first string of '0' and '1'
// characters whose length is its width.  Equal contents compare equal, so a
// BitString can key a map.
type BitString string

// Width returns the number of bits in b.
func (b BitString) Width() int {
	return len(b)
}

// Encode returns the width-bit, zero-padded binary representation of value.
// Bits of value above the requested width are discarded.
func Encode(value uint64, width int) (BitString, error) {
	if width < 0 || width > MaxWidth {
		return "", errors.Wrapf(ErrWidth, "width %d", width)
	}
	var sb strings.Builder
	sb.Grow(width)
	for i := width - 1; i >= 0; i-- {
		if (value>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return BitString(sb.String()), nil
}

// Decode returns the unsigned integer that b represents.
func Decode(b BitString) (uint64, error) {
	if len(b) > MaxWidth {
		return 0, errors.Wrapf(ErrWidth, "width %d", len(b))
	}
	var v uint64
	for i := 0; i < len(b); i++ {
		v <<= 1
		switch b[i] {
		case '0':
		case '1':
			v |= 1
		default:
			return 0, errors.Errorf("invalid character %q at position %d of %q", b[i], i, string(b))
		}
	}
	return v, nil
}
