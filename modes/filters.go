package modes

import (
	"image"
	"strconv"
	"strings"

	"badc0de.net/pkg/go-spriterender"
)

// DefaultSpeed is the frame duration, in milliseconds, used for missing,
// malformed or zero entries of a speed list.
const DefaultSpeed = 500

// IndexFilter parses a cell index typed by the user. An empty string, or one
// ending in a bare "0x" (the user is still typing), is 0. A "0x" or "-0x"
// prefix selects hexadecimal; anything else is decimal.
func IndexFilter(index string) (int, error) {
	s := strings.TrimSpace(index)
	if s == "" || strings.HasSuffix(s, "0x") {
		return 0, nil
	}

	neg := false
	digits := s
	switch {
	case strings.HasPrefix(s, "0x"):
		digits = s[2:]
	case strings.HasPrefix(s, "-0x"):
		neg, digits = true, s[3:]
	default:
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, spriterender.Parsef("index %q is not a number", index)
		}
		return v, nil
	}

	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, spriterender.Parsef("index %q is not a hex number", index)
	}
	v, err := strconv.ParseInt(digits, 16, 0)
	if err != nil {
		return 0, spriterender.Parsef("index %q is not a hex number", index)
	}
	if neg {
		v = -v
	}
	return int(v), nil
}

// LengthFilter resolves a requested length. A non-zero length is returned
// unchanged. Zero means "to the end of the sheet": the cells remaining after
// index, divided by offset (the number of cells each unit consumes). With
// overviewOverride set, zero means three pose slots instead.
func LengthFilter(length int, index string, size image.Point, width, height, offset int, overviewOverride bool) (int, error) {
	if length != 0 {
		return length, nil
	}
	if overviewOverride {
		return 3, nil
	}
	if width <= 0 || height <= 0 {
		return 0, spriterender.Geometryf("cell size %dx%d must be positive", width, height)
	}
	if offset <= 0 {
		return 0, spriterender.Geometryf("length offset %d must be positive", offset)
	}
	idx, err := IndexFilter(index)
	if err != nil {
		return 0, err
	}
	cells := (size.X / width) * (size.Y / height)
	return floorDiv(cells-idx, offset), nil
}

// SpeedFilter parses a comma-separated list of frame durations in
// milliseconds and repeats it cyclically (or truncates it) to exactly length
// entries. Entries that are not plain digits, or are zero, become
// DefaultSpeed.
func SpeedFilter(speeds string, length int) ([]int, error) {
	if length < 0 {
		return nil, spriterender.Parsef("speed list length %d must not be negative", length)
	}
	var parsed []int
	for _, e := range strings.Split(speeds, ",") {
		parsed = append(parsed, parseSpeed(strings.TrimSpace(e)))
	}

	out := make([]int, length)
	for i := range out {
		out[i] = parsed[i%len(parsed)]
	}
	return out, nil
}

func parseSpeed(s string) int {
	if s == "" {
		return DefaultSpeed
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return DefaultSpeed
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v == 0 {
		return DefaultSpeed
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
