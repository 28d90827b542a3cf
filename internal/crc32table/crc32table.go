// Package crc32table implements the CRC-32 (IEEE 802.3, reflected)
// primitives the partial hasher is built on: a one-byte-at-a-time table,
// advancing a CRC register by a zero byte, the CRC of an all-zero block of
// arbitrary length, and combining two known CRCs into the CRC of their
// concatenation.
package crc32table

import (
	"github.com/snksoft/crc"
	"github.com/vimeo/go-util/crc32combine"
)

// reflectedPolynomial is the CRC-32 (IEEE 802.3) generator polynomial in its
// bit-reflected form, as used by every reflected CRC-32 implementation
// (zlib, hash/crc32, snksoft/crc with ReflectIn/ReflectOut set).
const reflectedPolynomial = 0xEDB88320

// initCRC is both the initial register value and the final XOR constant of
// standard CRC-32: a CRC register before its first byte, and the bridge
// between a "raw" (pre-final-XOR) register value and the finalized CRC.
const initCRC = ^uint32(0)

var byteTable = buildTable()

// buildTable constructs the reflected CRC-32 byte table: entry i is the raw
// CRC produced by feeding the 8 bits of byte i, lsb-first, starting from a
// zero register. This is the same construction snksoft/crc and
// npat-efault/crc16 use for their own polynomials, specialized to
// reflectedPolynomial.
func buildTable() [256]uint32 {
	var t [256]uint32
	for i := range t {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 == 1 {
				c = c>>1 ^ reflectedPolynomial
			} else {
				c >>= 1
			}
		}
		t[i] = c
	}
	return t
}

// UpdateZero advances a raw (pre-final-XOR) CRC-32 register by one zero
// input byte. It is the single table lookup a real Update loop would do for
// an input byte of 0: the XOR term the table normally mixes in from the
// input byte vanishes, so only crc's own low byte drives the lookup.
func UpdateZero(crc uint32) uint32 {
	return byteTable[crc&0xff] ^ (crc >> 8)
}

// Combine returns the finalized CRC-32 of A‖B given CRC-32(A), CRC-32(B) and
// len(B). It is backed by the same GF(2)-matrix construction zlib's
// crc32_combine uses (and that github.com/vimeo/go-util/crc32combine ports
// to Go): both crc values are ordinary finalized CRC-32 results, not raw
// register state.
func Combine(aCRC, bCRC uint32, bLen int64) uint32 {
	return crc32combine.CRC32Combine(reflectedPolynomial, aCRC, bCRC, bLen)
}

// wholeHash is a single table-driven accumulator reused across whole-buffer
// CRC-32 calculations; CalculateCRC resets it before every use, so sharing
// one instance is safe for this package's single-threaded callers.
var wholeHash = crc.NewHash(crc.CRC32)

// Whole returns the finalized CRC-32 of data in one call, using the shared
// wholeHash instance rather than building a new crc.Hash per calculation.
func Whole(data []byte) uint32 {
	return uint32(wholeHash.CalculateCRC(data))
}

// ZeroesCRC32 returns the finalized CRC-32 of a buffer of length zero bytes.
// It expresses that CRC as the composition of CRCs over power-of-two
// zero-blocks whose lengths are the set bits of length, each one built by
// repeatedly squaring (doubling) a running zero-block CRC and combining it
// into an accumulator whenever the corresponding bit is set. This runs in
// O(log length) combine calls rather than O(length) byte updates.
func ZeroesCRC32(length int64) uint32 {
	if length < 0 {
		panic("crc32table: negative length")
	}
	if length == 0 {
		return Whole(nil)
	}

	remaining := uint64(length)
	var acc uint32
	blockCRC := Whole([]byte{0})
	blockLen := uint64(1)

	for n := uint(0); n < 64; n++ {
		pow2 := uint64(1) << n
		switch {
		case remaining&pow2 != 0:
			acc = Combine(acc, blockCRC, int64(blockLen))
		case remaining < pow2:
			return acc
		}
		blockCRC = Combine(blockCRC, blockCRC, int64(blockLen))
		blockLen <<= 1
	}
	return acc
}
