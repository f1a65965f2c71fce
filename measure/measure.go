package measure

// This file contains benchmark sampling functionality: each
// (project, metric) pair maps to one hyperfine invocation whose JSON
// export is reduced to a single Sample for the working tree under
// test.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/benchgate/benchgate/model"
	"github.com/rs/zerolog"
)

// Metric pairs a metric name with the shell command benchmarked for
// it. The literal "{dir}" in the command expands to the project
// directory, quoted for the shell hyperfine runs the command in.
type Metric struct {
	Name    string
	Command string
}

// render substitutes the project directory into the command template.
func (m Metric) render(projectDir string) string {
	return strings.ReplaceAll(m.Command, "{dir}", shellescape.Quote(projectDir))
}

type project struct {
	name string
	dir  string
}

// TakeSamples benchmarks every project under projectsDir with each
// metric command, one timed run per pair, and returns the resulting
// samples. Hyperfine exports land in tmpDir. Any malformed export is
// a returned error, never skipped.
func TakeSamples(logger zerolog.Logger, projectsDir, tmpDir string, metrics []Metric) ([]model.Sample, error) {
	projects, err := listProjects(projectsDir)
	if err != nil {
		return nil, err
	}

	var samples []model.Sample
	for _, proj := range projects {
		for _, metric := range metrics {
			exportPath := filepath.Join(tmpDir, fmt.Sprintf("%s-%s.json", proj.name, metric.Name))
			ts := time.Now().UTC()

			measurements, err := runHyperfine(logger, metric.render(proj.dir), exportPath, 1)
			if err != nil {
				return nil, err
			}

			for _, measurement := range measurements.Results {
				sample, err := model.NewSample(proj.name, metric.Name, ts, measurement)
				if err != nil {
					return nil, err
				}
				samples = append(samples, sample)
			}
		}
	}

	return samples, nil
}

// Measure benchmarks every project with the configured metrics and
// writes one hyperfine export per (project, metric) pair to outDir.
// The exports are the raw statistics a release process turns into a
// baseline.
func Measure(logger zerolog.Logger, projectsDir, outDir string, metrics []Metric, runs int) error {
	projects, err := listProjects(projectsDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, proj := range projects {
		for _, metric := range metrics {
			exportPath := filepath.Join(outDir, fmt.Sprintf("%s-%s.json", proj.name, metric.Name))
			if _, err := runHyperfine(logger, metric.render(proj.dir), exportPath, runs); err != nil {
				return err
			}
			logger.Info().
				Str("project", proj.name).
				Str("metric", metric.Name).
				Str("output", exportPath).
				Msg("Measurements written")
		}
	}

	return nil
}

// listProjects returns the immediate subdirectories of projectsDir,
// in name order.
func listProjects(projectsDir string) ([]project, error) {
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	var projects []project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		projects = append(projects, project{
			name: entry.Name(),
			dir:  filepath.Join(projectsDir, entry.Name()),
		})
	}

	if len(projects) == 0 {
		return nil, fmt.Errorf("no projects found in %s", projectsDir)
	}

	return projects, nil
}

// buildHyperfineArgs builds the hyperfine argument list for one
// benchmarked command.
func buildHyperfineArgs(command, exportPath string, runs int) []string {
	return []string{
		"--runs", strconv.Itoa(runs),
		"--export-json", exportPath,
		command,
	}
}

func runHyperfine(logger zerolog.Logger, command, exportPath string, runs int) (model.Measurements, error) {
	args := buildHyperfineArgs(command, exportPath, runs)
	cmd := exec.Command("hyperfine", args...)

	logger.Info().
		Str("command", command).
		Int("runs", runs).
		Msg("Benchmarking command")

	// Capture stderr so a failure message survives into the error;
	// both streams stay visible on the console.
	var stderrBuf bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return model.Measurements{}, fmt.Errorf("hyperfine exited with code %d: %s", exitErr.ExitCode(), strings.TrimSpace(stderrBuf.String()))
		}
		return model.Measurements{}, fmt.Errorf("failed to run hyperfine: %w", err)
	}

	return readExport(exportPath)
}

// readExport parses a hyperfine JSON export file.
func readExport(path string) (model.Measurements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Measurements{}, fmt.Errorf("failed to read hyperfine export: %w", err)
	}

	var measurements model.Measurements
	if err := json.Unmarshal(data, &measurements); err != nil {
		return model.Measurements{}, fmt.Errorf("failed to parse hyperfine export %s: %w", path, err)
	}

	return measurements, nil
}
