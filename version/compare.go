package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two "major.minor.patch" versions, with or without a leading "v".
// It returns 1 when a is newer, -1 when b is newer and 0 when they are equal.
func Compare(a, b string) (int, error) {
	av, err := parseVersion(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseVersion(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parseVersion(s string) ([3]int, error) {
	var v [3]int

	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("invalid version %q", s)
	}

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version %q", s)
		}
		v[i] = n
	}

	return v, nil
}
