// Package clock parses wall-clock times of day ("HH:MM" or "HH:MM:SS")
// into minutes since midnight.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClockTime = errors.New("invalid clock time")

// Minutes is a time of day expressed as minutes since midnight (0..1439).
type Minutes int

// Parse accepts "HH:MM" or "HH:MM:SS". Seconds are validated and then
// truncated, so "10:30:59" and "10:30" compare equal.
func Parse(s string) (Minutes, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}

	limits := []int{23, 59, 59}
	values := make([]int, len(parts))
	for i, p := range parts {
		n, err := parseField(p, limits[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
		}
		values[i] = n
	}

	return Minutes(values[0]*60 + values[1]), nil
}

// parseField requires exactly two digits in [0, max].
func parseField(p string, max int) (int, error) {
	if len(p) != 2 || p[0] < '0' || p[0] > '9' || p[1] < '0' || p[1] > '9' {
		return 0, errors.New("not a two digit field")
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, err
	}
	if n > max {
		return 0, errors.New("field out of range")
	}
	return n, nil
}

// String renders the value back as "HH:MM".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}
