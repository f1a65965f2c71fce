package model

import (
	"fmt"
	"time"
)

// Sample is one fresh timing observation for a (project, metric) pair,
// taken from the working tree under test.
type Sample struct {
	Project   string    `json:"project"`
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"ts"`
}

// MalformedMeasurementError reports a measurement whose raw timing
// count makes it unusable as a sample. A sampling run produces exactly
// one timing per measurement; zero or several indicate corrupted
// upstream data and must not silently degrade to an average or a
// first value.
type MalformedMeasurementError struct {
	Project string
	Metric  string
	Times   int
}

func (e *MalformedMeasurementError) Error() string {
	return fmt.Sprintf("malformed measurement for %s/%s: expected exactly one raw timing, found %d", e.Project, e.Metric, e.Times)
}

// NewSample builds a Sample from a measurement that is expected to
// carry exactly one raw timing.
func NewSample(project, metric string, ts time.Time, measurement Measurement) (Sample, error) {
	if len(measurement.Times) != 1 {
		return Sample{}, &MalformedMeasurementError{
			Project: project,
			Metric:  metric,
			Times:   len(measurement.Times),
		}
	}

	return Sample{
		Project:   project,
		Metric:    metric,
		Value:     measurement.Times[0],
		Timestamp: ts,
	}, nil
}
