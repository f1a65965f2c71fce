package history

// This file contains shared history utilities for loading and parsing
// recorded comparison runs.

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/benchgate/benchgate/model"
	"github.com/rs/zerolog"
)

type Entry struct {
	Run      model.Run
	FullPath string
}

// Root returns the .benchgate directory path from the git repository
// root.
func Root() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	repoRoot := strings.TrimSpace(string(output))
	root := filepath.Join(repoRoot, ".benchgate")

	// Check if .benchgate directory exists
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return "", fmt.Errorf("no recorded runs found in %s", root)
	}

	return root, nil
}

// LoadEntries loads all recorded runs from the .benchgate directory.
func LoadEntries(logger zerolog.Logger, root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			runPath := filepath.Join(path, "run.json")
			if _, err := os.Stat(runPath); err == nil {
				run, err := parseRunJSON(runPath)
				if err != nil {
					logger.Warn().Err(err).Str("path", runPath).Msg("Failed to parse run.json")
					return nil
				}

				entries = append(entries, Entry{
					Run:      run,
					FullPath: path,
				})
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk .benchgate directory: %w", err)
	}

	return entries, nil
}

// parseRunJSON parses a run.json file.
func parseRunJSON(runPath string) (model.Run, error) {
	data, err := os.ReadFile(runPath)
	if err != nil {
		return model.Run{}, err
	}

	var run model.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return model.Run{}, err
	}

	return run, nil
}
