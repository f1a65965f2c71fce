package model

import "time"

// Run represents a single recorded benchgate comparison.
type Run struct {
	// Unique ID for this run (16 random bytes, hex encoded)
	ID string `json:"id"`
	// Timestamp when the run started
	Timestamp time.Time `json:"timestamp"`
	// Command-line arguments (including command name)
	Args []string `json:"args"`
	// Working directory where the command was run (relative to repo root)
	WorkDir string `json:"workdir"`
	// Exit code of the run
	ExitCode int `json:"exit_code"`
	// Duration of the run
	Duration time.Duration `json:"duration"`
	// Git information
	Git *Git `json:"git,omitempty"`
	// Version of the baseline the samples were compared against
	BaselineVersion *Version `json:"baseline_version,omitempty"`
	// Number of calculations flagged as regressions
	Regressions int `json:"regressions"`
	// All calculations produced by the comparison
	Calculations []Calculation `json:"calculations,omitempty"`
}

// Git contains git repository information
type Git struct {
	// Git commit hash at time of execution
	Commit string `json:"commit,omitempty"`
	// Git branch at time of execution
	Branch string `json:"branch,omitempty"`
	// Repository name
	Repo string `json:"repo,omitempty"`
}
