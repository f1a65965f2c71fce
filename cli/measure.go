package cli

// This file contains the measure command for producing the raw
// measurement exports a release process turns into a baseline.

import (
	"github.com/benchgate/benchgate/measure"
	"github.com/urfave/cli/v2"
)

func (a *App) measure(ctx *cli.Context) error {
	projectsDir := ctx.String("projects-dir")
	outDir := ctx.String("out")
	runs := ctx.Int("runs")

	metrics, err := parseMetricFlags(ctx.StringSlice("command"))
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("projects_dir", projectsDir).
		Str("out", outDir).
		Int("runs", runs).
		Msg("Measuring projects")

	return measure.Measure(a.logger, projectsDir, outDir, metrics, runs)
}
