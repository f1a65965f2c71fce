package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Version identifies the release a baseline was recorded for.
// It is ordered lexicographically on (major, minor, patch) and
// serializes to the canonical "major.minor.patch" string. That string
// form is a wire contract: baseline files and calculation output both
// carry it.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseError reports version text that does not follow the
// "major.minor.patch" contract.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: must be in the format major.minor.patch where each component is an integer", e.Input)
}

// ParseVersion parses the canonical "major.minor.patch" form. The text
// must split into exactly three integer components; anything else is a
// *ParseError.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, &ParseError{Input: s}
	}

	ints := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, &ParseError{Input: s}
		}
		ints[i] = n
	}

	return Version{Major: ints[0], Minor: ints[1], Patch: ints[2]}, nil
}

// String returns the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 ordering v against other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MarshalJSON encodes the version as its canonical string form.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a version from its canonical string form.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
