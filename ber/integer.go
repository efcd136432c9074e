package ber

import (
	"errors"
	"math/big"
)

// EncodeInteger returns the minimal two's-complement big-endian encoding of
// n, as required for an ASN.1 INTEGER content octet sequence.
func EncodeInteger(n int64) []byte {
	return EncodeBigInteger(big.NewInt(n))
}

// EncodeBigInteger returns the minimal two's-complement big-endian encoding
// of n, supporting values beyond the range of int64 (e.g. large PacketCable
// enumerations carried as INTEGER).
func EncodeBigInteger(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}
	if n.Sign() > 0 {
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	// Negative: two's complement of the smallest byte count that fits. The
	// boundary is governed by -n-1, not |n| — e.g. -128 fits in one byte
	// (BitLen(127) == 7) even though BitLen(128) == 8 would suggest two.
	absMinusOne := new(big.Int).Sub(new(big.Int).Neg(n), big.NewInt(1))
	numBytes := absMinusOne.BitLen()/8 + 1
	twos := new(big.Int).Add(n, new(big.Int).Lsh(big.NewInt(1), uint(numBytes*8)))
	b := twos.Bytes()
	for len(b) < numBytes {
		b = append([]byte{0}, b...)
	}
	return b
}

// DecodeInteger decodes the two's-complement big-endian content octets b of
// an ASN.1 INTEGER into an int64. An error is returned if b does not fit.
func DecodeInteger(b []byte) (int64, error) {
	n := DecodeBigInteger(b)
	if !n.IsInt64() {
		return 0, errors.New("ber: INTEGER does not fit in int64")
	}
	return n.Int64(), nil
}

// DecodeBigInteger decodes the two's-complement big-endian content octets b
// of an ASN.1 INTEGER into a [*big.Int] of arbitrary size.
func DecodeBigInteger(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	n := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		// negative: subtract 2^(8*len(b))
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return n
}
