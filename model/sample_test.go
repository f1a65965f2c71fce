package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	ts := time.Now().UTC()
	measurement := Measurement{
		Command: "some command",
		Mean:    1.00,
		Stddev:  0.1,
		Median:  1.00,
		User:    1.00,
		System:  1.00,
		Min:     0.00,
		Max:     2.00,
		Times:   []float64{1.0},
	}

	sample, err := NewSample("test", "parse", ts, measurement)
	require.NoError(t, err)
	require.Equal(t, Sample{
		Project:   "test",
		Metric:    "parse",
		Value:     1.0,
		Timestamp: ts,
	}, sample)
}

func TestNewSampleMalformed(t *testing.T) {
	tests := []struct {
		name  string
		times []float64
	}{
		{name: "no timings", times: []float64{}},
		{name: "nil timings", times: nil},
		{name: "too many timings", times: []float64{1.0, 2.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSample("test", "parse", time.Now(), Measurement{Times: tt.times})
			require.Error(t, err)

			var malformed *MalformedMeasurementError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, "test", malformed.Project)
			require.Equal(t, "parse", malformed.Metric)
			require.Equal(t, len(tt.times), malformed.Times)
		})
	}
}
