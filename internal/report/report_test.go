package report

import (
	"bytes"
	"testing"

	"github.com/hcs64/crc-init-trunc/partial"
	"github.com/hcs64/crc-init-trunc/search"
)

func TestLineTruncateStart(t *testing.T) {
	m := search.Match{K: 0x1a, CRC: 0x2144DF1C}
	got := Line(partial.TruncateStart, m)
	want := "matches with 0 from start until 0x1a"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestLineTruncateEnd(t *testing.T) {
	m := search.Match{K: 0x1a, CRC: 0x2144DF1C}
	got := Line(partial.TruncateEnd, m)
	want := "matches with 0 from 0x1a until end"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestWriteMatchAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMatch(&buf, partial.TruncateStart, search.Match{K: 0}); err != nil {
		t.Fatalf("WriteMatch() error = %v", err)
	}
	want := "matches with 0 from start until 0x0\n"
	if buf.String() != want {
		t.Errorf("WriteMatch() wrote %q, want %q", buf.String(), want)
	}
}

func TestSourceCRCFormat(t *testing.T) {
	got := SourceCRC(0xCBF43926)
	want := "source CRC: 0xcbf43926"
	if got != want {
		t.Errorf("SourceCRC() = %q, want %q", got, want)
	}
}
