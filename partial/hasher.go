// Package partial implements the partial hasher: a lazy producer of the
// CRC-32 of every "partially zeroed" variant of a byte buffer, computed in
// O(1) amortized work per emitted value instead of materializing and
// rehashing each variant.
package partial

import "github.com/hcs64/crc-init-trunc/internal/crc32table"

// Mode selects which end of the buffer gets progressively zeroed.
type Mode int

const (
	// TruncateStart (fill-from-end) is the default: report k such that
	// CRC32(zeros(k) ++ buf[k:]) equals the target. The prefix of length k
	// is replaced by zero bytes.
	TruncateStart Mode = iota
	// TruncateEnd (zero-from-end): report k such that
	// CRC32(buf[:k] ++ zeros(n-k)) equals the target. The suffix of
	// length n-k is replaced by zero bytes.
	TruncateEnd
)

func (m Mode) String() string {
	switch m {
	case TruncateStart:
		return "truncate-start"
	case TruncateEnd:
		return "truncate-end"
	default:
		return "unknown"
	}
}

// initCRC converts between a raw (pre-final-XOR) CRC-32 register value and
// its finalized form: raw = finalized ^ initCRC, and back again, since
// CRC-32's final XOR constant equals its initial value.
const initCRC = ^uint32(0)

// Hasher emits the CRC-32 of successive partial variants of a buffer. It
// holds a read-only, shrinking view of the original buffer and mutates only
// its own fields; Next costs eight XORs plus eight table lookups per byte
// consumed.
type Hasher struct {
	buf   []byte
	first bool

	allZero     uint32    // raw CRC-32 of an all-zero buffer of the original length
	currentCRC  uint32    // finalized CRC-32 of the variant Next will return
	rollingMask [8]uint32 // raw CRC-32 of a length-n buffer, one set bit at position i of the current trailing byte
	advanceXOR  uint32    // raw-domain delta that shifts rollingMask one byte toward the start
}

// New constructs a Hasher over buf for the given mode. buf is borrowed for
// the Hasher's entire lifetime; New does not copy it.
func New(buf []byte, mode Mode) *Hasher {
	n := len(buf)
	if n == 0 {
		return &Hasher{buf: buf, first: true, currentCRC: crc32table.Whole(nil)}
	}

	allZeroCRC := crc32table.ZeroesCRC32(int64(n))
	extendCRC := crc32table.ZeroesCRC32(int64(n - 1))

	var rollingMask [8]uint32
	for i := 0; i < 8; i++ {
		bitCRC := crc32table.Whole([]byte{1 << uint(i)})
		maskCRC := crc32table.Combine(extendCRC, bitCRC, 1)
		rollingMask[i] = maskCRC ^ initCRC
	}

	h := &Hasher{
		buf:         buf,
		first:       true,
		allZero:     allZeroCRC ^ initCRC,
		rollingMask: rollingMask,
		advanceXOR:  blockAdvanceXOR(int64(n)),
	}

	switch mode {
	case TruncateEnd:
		h.currentCRC = crc32table.Whole(buf)
	default: // TruncateStart
		h.currentCRC = allZeroCRC
	}
	return h
}

// Next returns the finalized CRC-32 of the current partial variant, then
// advances the cursor one byte toward the start of the buffer. The second
// return value is true as long as a value was produced; it becomes false
// once all len(buf)+1 values have been emitted, and stays false on every
// subsequent call.
func (h *Hasher) Next() (uint32, bool) {
	if h.first {
		h.first = false
		return h.currentCRC, true
	}
	if len(h.buf) == 0 {
		return 0, false
	}

	last := h.buf[len(h.buf)-1]
	for i := 0; i < 8; i++ {
		if last&(1<<uint(i)) != 0 {
			h.currentCRC ^= h.rollingMask[i] ^ h.allZero
		}
	}

	h.buf = h.buf[:len(h.buf)-1]
	if len(h.buf) > 0 {
		for i := 0; i < 8; i++ {
			h.rollingMask[i] = crc32table.UpdateZero(h.rollingMask[i]) ^ h.advanceXOR
		}
	}
	return h.currentCRC, true
}

// blockAdvanceXOR returns the additive correction that turns a raw,
// length-n zero-block CRC into the length-(n-1) equivalent after one
// UpdateZero step, compensating for the length change UpdateZero implicitly
// assumes.
func blockAdvanceXOR(n int64) uint32 {
	last := crc32table.ZeroesCRC32(n) ^ initCRC
	return last ^ crc32table.UpdateZero(last)
}
