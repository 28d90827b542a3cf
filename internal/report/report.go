// Package report formats partial-hasher matches for the CLI's stdout, per
// spec.md's exact wording for each mode.
package report

import (
	"fmt"
	"io"

	"github.com/hcs64/crc-init-trunc/partial"
	"github.com/hcs64/crc-init-trunc/search"
)

// Line renders a single match line for mode.
func Line(mode partial.Mode, m search.Match) string {
	if mode == partial.TruncateEnd {
		return fmt.Sprintf("matches with 0 from %#x until end", m.K)
	}
	return fmt.Sprintf("matches with 0 from start until %#x", m.K)
}

// WriteMatch writes one match line, terminated by a newline, to w.
func WriteMatch(w io.Writer, mode partial.Mode, m search.Match) error {
	_, err := fmt.Fprintln(w, Line(mode, m))
	return err
}

// SourceCRC formats the stderr-only diagnostic line printed before the
// search begins, showing the whole, unmodified buffer's CRC-32.
func SourceCRC(crc uint32) string {
	return fmt.Sprintf("source CRC: %#08x", crc)
}
