package cli

// This file contains the list command for displaying previous
// comparison runs.

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/benchgate/benchgate/history"
	"github.com/urfave/cli/v2"
)

func (a *App) list(ctx *cli.Context) error {
	limit := ctx.Int("limit")

	// Get benchgate root directory
	root, err := history.Root()
	if err != nil {
		return err
	}

	// Load all recorded runs
	entries, err := history.LoadEntries(a.logger, root)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No recorded runs found")
		return nil
	}

	// Sort by timestamp (newest first)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Run.Timestamp.After(entries[j].Run.Timestamp)
	})

	// Apply limit
	displayRuns := entries
	if limit > 0 && limit < len(displayRuns) {
		displayRuns = displayRuns[:limit]
	}

	fmt.Printf("\n=== History (%d total) ===\n\n", len(entries))

	for _, entry := range displayRuns {
		run := entry.Run
		timestamp := run.Timestamp.Format("2006-01-02 15:04:05")

		// Format duration
		duration := run.Duration.Round(time.Millisecond)

		// Determine status indicator
		status := "✓"
		if run.ExitCode != 0 {
			status = "✗"
		}

		// Format args (skip the program name)
		args := ""
		if len(run.Args) > 1 {
			args = strings.Join(run.Args[1:], " ")
		}

		// Show short ID (first 8 chars)
		shortID := run.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		fmt.Printf("%s  %s  [%s]  exit=%d  id=%s\n", status, timestamp, duration, run.ExitCode, shortID)
		if run.BaselineVersion != nil {
			fmt.Printf("   Baseline: %s\n", run.BaselineVersion)
		}
		if len(run.Calculations) > 0 {
			fmt.Printf("   Calculations: %d (%d regressed)\n", len(run.Calculations), run.Regressions)
		}
		if args != "" {
			fmt.Printf("   Args: %s\n", args)
		}
		if run.WorkDir != "" {
			fmt.Printf("   Path: %s\n", run.WorkDir)
		}
		if run.Git != nil && run.Git.Commit != "" {
			shortCommit := run.Git.Commit
			if len(shortCommit) > 8 {
				shortCommit = shortCommit[:8]
			}
			fmt.Printf("   Commit: %s", shortCommit)
			if run.Git.Branch != "" {
				fmt.Printf(" (%s)", run.Git.Branch)
			}
			fmt.Println()
		}
		fmt.Printf("   %s\n", entry.FullPath)
		fmt.Println()
	}

	fmt.Println("\nView full calculations: cat <path>/run.json")

	return nil
}
