package model

import "time"

// Calculation is the verdict for one (project, metric) pair: the fresh
// sample joined against its baseline statistics, with the computed
// threshold and the pass/fail flag. Calculations are emitted for
// non-regressions too; callers filter if they only want failures.
type Calculation struct {
	Version    Version   `json:"version"`
	Project    string    `json:"project"`
	Metric     string    `json:"metric"`
	Regression bool      `json:"regression"`
	Timestamp  time.Time `json:"ts"`
	Sigma      float64   `json:"sigma"`
	Mean       float64   `json:"mean"`
	Stddev     float64   `json:"stddev"`
	Threshold  float64   `json:"threshold"`
}
