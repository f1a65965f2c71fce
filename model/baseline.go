package model

import "time"

// BaselineMetric holds the historical statistics recorded for one
// (project, metric) pair.
type BaselineMetric struct {
	Project     string      `json:"project"`
	Metric      string      `json:"metric"`
	Timestamp   time.Time   `json:"ts"`
	Measurement Measurement `json:"measurement"`
}

// Baseline is the full set of metrics recorded for one release, as
// written by the release process. The (project, metric) key is
// expected to be unique within one baseline; duplicates are a caller
// error and are not validated here.
type Baseline struct {
	Version Version          `json:"version"`
	Metrics []BaselineMetric `json:"metrics"`
}
