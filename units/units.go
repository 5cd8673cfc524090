// Package units formats and parses the byte sizes and durations shown in stream descriptions.
package units

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/xhit/go-str2duration/v2"
)

// FormatSize renders bytes with SI units, e.g. "1.2 GB".
func FormatSize(bytes uint64) string {
	return humanize.Bytes(bytes)
}

// FormatDuration renders seconds as hours, minutes and seconds, e.g. "1h 32m".
// Zero components are omitted; a zero duration renders as "0s".
func FormatDuration(seconds float64) string {
	total := int64(math.Floor(seconds))
	if total <= 0 {
		return "0s"
	}

	h, m, s := total/3600, total/60%60, total%60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}

// ParseSize parses human input such as "1.2GB", "700 MiB" or "42" into bytes.
func ParseSize(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n, nil
}

// ParseDuration parses human input such as "1h32m", "90m" or "2d" into seconds.
// A bare number is taken as seconds.
func ParseDuration(s string) (float64, error) {
	in := strings.ReplaceAll(s, " ", "")
	if isDigits(in) {
		in += "s"
	}

	d, err := str2duration.ParseDuration(in)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d.Seconds(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
