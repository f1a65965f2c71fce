package model

// Measurement matches the shape of a single element of hyperfine's
// JSON export: the reduced statistics for one benchmarked command.
// Times holds the raw per-run timings and may be empty when only the
// summary was persisted as a baseline.
type Measurement struct {
	Command string    `json:"command"`
	Mean    float64   `json:"mean"`
	Stddev  float64   `json:"stddev"`
	Median  float64   `json:"median"`
	User    float64   `json:"user"`
	System  float64   `json:"system"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Times   []float64 `json:"times"`
}

// Measurements matches hyperfine's top-level export document.
type Measurements struct {
	Results []Measurement `json:"results"`
}
