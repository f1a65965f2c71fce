package cli

// This file contains run recording functionality for saving
// comparison results to the history directory, plus the git
// integration used to stamp each run.

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/benchgate/benchgate/model"
)

func (a *App) recordRun(run *model.Run) error {
	// Get repository root
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("not in a git repository: %w", err)
	}
	repoRoot := strings.TrimSpace(string(output))

	if run.Git != nil {
		run.Git.Repo = filepath.Base(repoRoot)
	}

	// Store the working directory relative to the repo root
	if run.WorkDir != "" {
		if rel, err := filepath.Rel(repoRoot, run.WorkDir); err == nil {
			run.WorkDir = rel
		}
	}

	// Create directory .benchgate/<timestamp>-<id>
	timestamp := run.Timestamp.Format("20060102-150405")
	shortID := run.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	runDir := filepath.Join(repoRoot, ".benchgate", fmt.Sprintf("%s-%s", timestamp, shortID))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	// Write run metadata
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "run.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write run metadata: %w", err)
	}

	a.logger.Debug().Str("dir", runDir).Str("id", run.ID).Msg("Recorded run")
	return nil
}

func (a *App) getGitInfo() (commit, branch string, err error) {
	// Get current commit hash
	cmd := exec.Command("git", "rev-parse", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("failed to get git commit: %w", err)
	}
	commit = strings.TrimSpace(string(output))

	// Get current branch
	cmd = exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	output, err = cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("failed to get git branch: %w", err)
	}
	branch = strings.TrimSpace(string(output))

	return commit, branch, nil
}
