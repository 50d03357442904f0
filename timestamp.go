package audiotags

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision is the finest component present in a Timestamp.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
)

// Timestamp is a date with optional month, day and time of day, as stored
// in ID3v2.4 TDRC frames and Vorbis DATE comments:
// yyyy[-MM[-dd[THH[:mm[:ss]]]]].
// Components finer than Precision are zero and ignored.
type Timestamp struct {
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Second    int
	Precision Precision
}

// MaxYear is the largest year a four-digit timestamp can hold.
const MaxYear = 9999

// validYear reports whether year fits the four-digit year component.
func validYear(year int) bool {
	return year >= 0 && year <= MaxYear
}

// YearOnly returns a year-precision timestamp.
func YearOnly(year int) Timestamp {
	return Timestamp{Year: year, Precision: PrecisionYear}
}

// Date returns a day-precision timestamp.
func Date(year, month, day int) Timestamp {
	return Timestamp{Year: year, Month: month, Day: day, Precision: PrecisionDay}
}

// IsZero reports whether the timestamp holds nothing.
func (ts Timestamp) IsZero() bool {
	return ts.Precision == PrecisionNone
}

// WithYear returns a copy with Year replaced and finer components kept.
func (ts Timestamp) WithYear(year int) Timestamp {
	ts.Year = year
	if ts.Precision == PrecisionNone {
		ts.Precision = PrecisionYear
	}
	return ts
}

func (ts Timestamp) String() string {
	if ts.Precision == PrecisionNone {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%04d", ts.Year)
	if ts.Precision >= PrecisionMonth {
		fmt.Fprintf(&b, "-%02d", ts.Month)
	}
	if ts.Precision >= PrecisionDay {
		fmt.Fprintf(&b, "-%02d", ts.Day)
	}
	if ts.Precision >= PrecisionHour {
		fmt.Fprintf(&b, "T%02d", ts.Hour)
	}
	if ts.Precision >= PrecisionMinute {
		fmt.Fprintf(&b, ":%02d", ts.Minute)
	}
	if ts.Precision >= PrecisionSecond {
		fmt.Fprintf(&b, ":%02d", ts.Second)
	}
	return b.String()
}

// ParseTimestamp parses yyyy[-MM[-dd[THH[:mm[:ss]]]]]. A space is accepted
// in place of the T separator. Trailing components that do not parse stop
// the precision at the last valid one; a missing or invalid year is an error.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	datePart, clockPart := s, ""
	if i := strings.IndexAny(s, "T "); i >= 0 {
		datePart, clockPart = s[:i], strings.TrimSpace(s[i+1:])
	}

	dateFields := strings.Split(datePart, "-")
	year, ok := parseComponent(dateFields[0], 4, 0, MaxYear)
	if !ok {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
	}
	ts := Timestamp{Year: year, Precision: PrecisionYear}

	type component struct {
		dst       *int
		text      string
		width     int
		min, max  int
		precision Precision
	}
	var comps []component
	if len(dateFields) > 1 {
		comps = append(comps, component{&ts.Month, dateFields[1], 2, 1, 12, PrecisionMonth})
	}
	if len(dateFields) > 2 {
		comps = append(comps, component{&ts.Day, dateFields[2], 2, 1, 31, PrecisionDay})
	}
	if clockPart != "" && len(dateFields) == 3 {
		clockFields := strings.Split(clockPart, ":")
		comps = append(comps, component{&ts.Hour, clockFields[0], 2, 0, 23, PrecisionHour})
		if len(clockFields) > 1 {
			comps = append(comps, component{&ts.Minute, clockFields[1], 2, 0, 59, PrecisionMinute})
		}
		if len(clockFields) > 2 {
			comps = append(comps, component{&ts.Second, clockFields[2], 2, 0, 59, PrecisionSecond})
		}
	}

	for _, c := range comps {
		n, ok := parseComponent(c.text, c.width, c.min, c.max)
		if !ok {
			break
		}
		*c.dst = n
		ts.Precision = c.precision
	}
	return ts, nil
}

func parseComponent(s string, width, lo, hi int) (int, bool) {
	if s == "" || len(s) > width {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
