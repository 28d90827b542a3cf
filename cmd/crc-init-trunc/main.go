// Command crc-init-trunc finds every split position in a file whose
// partially zeroed variant produces a target CRC-32 (IEEE 802.3).
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hcs64/crc-init-trunc/internal/config"
	"github.com/hcs64/crc-init-trunc/internal/crc32table"
	"github.com/hcs64/crc-init-trunc/internal/report"
	"github.com/hcs64/crc-init-trunc/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, config.ErrUsage) {
			config.Usage(stderr, "crc-init-trunc")
			return 2
		}
		return 1
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stderr, report.SourceCRC(crc32table.Whole(data)))

	out := bufio.NewWriter(stdout)
	verifyFailed := false
	search.Iterate(data, cfg.Mode, cfg.Target, func(m search.Match) {
		if cfg.Verify {
			if want := search.Oracle(data, cfg.Mode, m.K); want != m.CRC {
				fmt.Fprintf(stderr, "internal error: verify mismatch at k=%#x: hasher=%#08x oracle=%#08x\n", m.K, m.CRC, want)
				verifyFailed = true
				return
			}
		}
		_ = report.WriteMatch(out, cfg.Mode, m)
	})
	out.Flush()

	if verifyFailed {
		return 1
	}
	return 0
}
