package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersionRoundTrip(t *testing.T) {
	versions := []Version{
		{Major: 0, Minor: 0, Patch: 0},
		{Major: 1, Minor: 2, Patch: 3},
		{Major: 10, Minor: 0, Patch: 42},
		{Major: 1, Minor: 20, Patch: 99},
		{Major: -1, Minor: 2, Patch: -3},
	}

	for _, v := range versions {
		t.Run(v.String(), func(t *testing.T) {
			parsed, err := ParseVersion(v.String())
			require.NoError(t, err)
			require.Equal(t, v, parsed)
		})
	}
}

func TestParseVersionInvalid(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"1.2.x",
		"a.b.c",
		"1..3",
		"1.2.3-rc1",
		"v1.2.3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVersion(input)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, input, parseErr.Input)
			require.Contains(t, err.Error(), "must be in the format major.minor.patch where each component is an integer")
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Version
		b    Version
		want int
	}{
		{name: "equal", a: Version{1, 2, 3}, b: Version{1, 2, 3}, want: 0},
		{name: "major wins", a: Version{2, 0, 0}, b: Version{1, 9, 9}, want: 1},
		{name: "minor wins", a: Version{1, 0, 0}, b: Version{1, 2, 0}, want: -1},
		{name: "patch wins", a: Version{1, 2, 1}, b: Version{1, 2, 0}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Compare(tt.b))
			require.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestVersionJSONWireFormat(t *testing.T) {
	data, err := json.Marshal(Version{Major: 1, Minor: 2, Patch: 3})
	require.NoError(t, err)
	require.Equal(t, `"1.2.3"`, string(data))

	var v Version
	require.NoError(t, json.Unmarshal([]byte(`"9.9.9"`), &v))
	require.Equal(t, Version{Major: 9, Minor: 9, Patch: 9}, v)
}

// The marshaller and unmarshaller are custom implementations so they
// should be tested that they match.
func TestVersionJSONRoundTrip(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var v2 Version
	require.NoError(t, json.Unmarshal(data, &v2))
	require.Equal(t, v, v2)
}

func TestVersionJSONRejectsMalformed(t *testing.T) {
	var v Version
	require.Error(t, json.Unmarshal([]byte(`"1.2"`), &v))
	require.Error(t, json.Unmarshal([]byte(`123`), &v))
}
