package cli

// This file contains the compare command: run the full sampling and
// comparison pipeline and gate on the verdicts.

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/benchgate/benchgate/calculate"
	"github.com/benchgate/benchgate/model"
	"github.com/urfave/cli/v2"
)

func (a *App) compare(ctx *cli.Context) error {
	startTime := time.Now()

	baselineDir := ctx.String("baseline-dir")
	projectsDir := ctx.String("projects-dir")
	tmpDir := ctx.String("tmp-dir")

	metrics, err := parseMetricFlags(ctx.StringSlice("command"))
	if err != nil {
		return err
	}

	// Generate random 16-byte ID
	idBytes := make([]byte, 16)
	if _, err := rand.Read(idBytes); err != nil {
		return fmt.Errorf("failed to generate run ID: %w", err)
	}

	run := &model.Run{
		ID:        hex.EncodeToString(idBytes),
		Timestamp: startTime,
		Args:      os.Args,
	}

	// Capture working directory
	if cwd, err := os.Getwd(); err == nil {
		run.WorkDir = cwd
	}

	// Capture git info (non-fatal if it fails)
	if commit, branch, err := a.getGitInfo(); err == nil {
		run.Git = &model.Git{
			Commit: commit,
			Branch: branch,
		}
	}

	// Track final exit code
	var finalErr error
	defer func() {
		run.Duration = time.Since(startTime)
		if finalErr != nil {
			run.ExitCode = 1
		}

		// Record the run (non-fatal if it fails)
		if err := a.recordRun(run); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to record run")
		}
	}()

	calculations, err := calculate.Regressions(a.logger, baselineDir, projectsDir, tmpDir, metrics)
	if err != nil {
		a.logger.Error().Err(err).Msg("Comparison failed")
		finalErr = err
		return err
	}

	regressions := 0
	for _, calc := range calculations {
		if calc.Regression {
			regressions++
		}
	}

	run.Regressions = regressions
	run.Calculations = calculations
	if len(calculations) > 0 {
		version := calculations[0].Version
		run.BaselineVersion = &version
	}

	// The printed JSON is the machine-readable result consumed by CI
	// reporting, so it goes to stdout rather than the logger.
	output, err := json.MarshalIndent(calculations, "", "  ")
	if err != nil {
		finalErr = err
		return fmt.Errorf("failed to marshal calculations: %w", err)
	}
	fmt.Println(string(output))

	if regressions > 0 {
		run.ExitCode = 1
		for _, calc := range calculations {
			if calc.Regression {
				a.logger.Error().
					Str("project", calc.Project).
					Str("metric", calc.Metric).
					Float64("value_threshold", calc.Threshold).
					Float64("mean", calc.Mean).
					Float64("stddev", calc.Stddev).
					Msg("Regression detected")
			}
		}
		return cli.Exit(fmt.Sprintf("%d regression(s) detected", regressions), 1)
	}

	a.logger.Info().
		Int("calculations", len(calculations)).
		Msg("No regressions detected")
	return nil
}
