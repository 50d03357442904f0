package audiotags

import (
	"math"
	"strconv"
	"strings"
)

// parseUint16 parses a numeric tag value. Anything that is not an unsigned
// integer fitting in 16 bits is reported as absent.
func parseUint16(s string) (uint16, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// numberPair is a track or disc position as stored in "N" or "N/M" form.
type numberPair struct {
	num, total       uint16
	hasNum, hasTotal bool
	combined         bool // the value used the "N/M" form
}

// parseNumberPair parses a track number string like "5" or "5/10".
// Each side is parsed on its own, so "x/10" still yields a total.
func parseNumberPair(s string) numberPair {
	var p numberPair
	if s == "" {
		return p
	}
	parts := strings.SplitN(s, "/", 2)
	p.num, p.hasNum = parseUint16(parts[0])
	if len(parts) == 2 {
		p.combined = true
		p.total, p.hasTotal = parseUint16(parts[1])
	}
	return p
}

func (p numberPair) String() string {
	var b strings.Builder
	if p.hasNum {
		b.WriteString(strconv.FormatUint(uint64(p.num), 10))
	}
	if p.hasTotal {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(p.total), 10))
	}
	return b.String()
}

// safeInt16 converts a position to the signed atom encoding used by MP4.
func safeInt16(n uint16) int16 {
	if n > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(n)
}

// fromInt16 reads a signed MP4 position; zero and negatives mean absent.
func fromInt16(n int16) (uint16, bool) {
	if n <= 0 {
		return 0, false
	}
	return uint16(n), true
}

func formatUint16(n uint16) string {
	return strconv.FormatUint(uint64(n), 10)
}
