// Package config parses the crc-init-trunc command line into a validated
// Config, the way plane-watch-acars-parser's cmd/acars_parser binary parses
// its own flags with a dedicated flag.FlagSet and a matching usage helper.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hcs64/crc-init-trunc/partial"
)

// ErrUsage wraps any error that should be reported with the full usage
// text and exit status 2 (wrong argument count, unknown flag), as opposed
// to a plain diagnostic with exit status 1.
var ErrUsage = errors.New("usage error")

// Config is the fully validated configuration for one run of the tool.
type Config struct {
	InputPath string
	Target    uint32
	Mode      partial.Mode
	Verify    bool
}

// Usage writes the invocation summary to w.
func Usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "usage: %s <infile> <target_crc_hex> [--truncate-start | --truncate-end] [-verify]\n", prog)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  target_crc_hex     hex CRC-32 (IEEE 802.3), case-insensitive, no 0x prefix")
	fmt.Fprintln(w, "  --truncate-start   find k with CRC32(zeros(k) ++ buf[k:]) == target (default)")
	fmt.Fprintln(w, "  --truncate-end     find k with CRC32(buf[:k] ++ zeros(n-k)) == target")
	fmt.Fprintln(w, "  -verify            re-check every match against a brute-force oracle")
}

// Parse parses argv (os.Args[1:]) into a Config. The two positional
// arguments and the mode/verify flags may appear in any order, matching
// spec.md's invocation style of flags trailing the positionals.
func Parse(argv []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("crc-init-trunc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	truncateStart := fs.Bool("truncate-start", false, "fill-from-end mode (default)")
	truncateEnd := fs.Bool("truncate-end", false, "zero-from-end mode")
	verify := fs.Bool("verify", false, "re-check matches with a brute-force oracle")

	var positional []string
	for _, arg := range argv {
		if strings.HasPrefix(arg, "-") && arg != "-" {
			if err := fs.Parse([]string{arg}); err != nil {
				return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
			}
			continue
		}
		positional = append(positional, arg)
	}

	if len(positional) != 2 {
		return cfg, fmt.Errorf("%w: expected <infile> <target_crc_hex>, got %d positional argument(s)", ErrUsage, len(positional))
	}
	if *truncateStart && *truncateEnd {
		return cfg, fmt.Errorf("%w: --truncate-start and --truncate-end are mutually exclusive", ErrUsage)
	}

	target, err := strconv.ParseUint(positional[1], 16, 32)
	if err != nil {
		return cfg, fmt.Errorf("malformed target CRC %q: %w", positional[1], err)
	}

	cfg.InputPath = positional[0]
	cfg.Target = uint32(target)
	cfg.Mode = partial.TruncateStart
	if *truncateEnd {
		cfg.Mode = partial.TruncateEnd
	}
	cfg.Verify = *verify

	return cfg, nil
}
