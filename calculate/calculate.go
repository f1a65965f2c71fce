package calculate

// This file contains the regression decision core: selecting the
// baseline to compare against and computing a threshold verdict for
// every (project, metric) pair present in both the baseline and the
// fresh samples.

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/benchgate/benchgate/measure"
	"github.com/benchgate/benchgate/model"
	"github.com/rs/zerolog"
)

// DefaultSigma is the confidence multiplier used by Regressions: a
// sample counts as a regression when it exceeds the baseline mean by
// more than three standard deviations.
const DefaultSigma = 3.0

// ErrNoBaselines is returned when there are no baseline records to
// select from. This reflects a deployment problem (empty or missing
// baseline directory) that the caller should report cleanly.
var ErrNoBaselines = errors.New("no baselines found")

// sampleKey is the identity of a measured pair. Kept as a struct
// rather than a joined string so that project="a", metric="b:c" can
// never collide with project="a:b", metric="c".
type sampleKey struct {
	project string
	metric  string
}

// SelectBaseline returns the baseline with the highest version. On an
// exact version tie the record seen earliest in input order wins.
func SelectBaseline(baselines []model.Baseline) (model.Baseline, error) {
	if len(baselines) == 0 {
		return model.Baseline{}, ErrNoBaselines
	}

	latest := baselines[0]
	for _, next := range baselines[1:] {
		if next.Version.Compare(latest.Version) > 0 {
			latest = next
		}
	}
	return latest, nil
}

// CalculateRegressions joins the samples against the baseline metrics
// by (project, metric) and emits one Calculation per matched pair, in
// baseline metric order. Pairs present on only one side are dropped:
// a project or metric that was newly added or removed has no
// comparison basis. Duplicate sample keys resolve last-write-wins.
func CalculateRegressions(samples []model.Sample, baseline model.Baseline, sigma float64) []model.Calculation {
	type observation struct {
		value float64
		ts    time.Time
	}

	observed := make(map[sampleKey]observation, len(samples))
	for _, s := range samples {
		observed[sampleKey{project: s.Project, metric: s.Metric}] = observation{value: s.Value, ts: s.Timestamp}
	}

	var calculations []model.Calculation
	for _, metric := range baseline.Metrics {
		obs, ok := observed[sampleKey{project: metric.Project, metric: metric.Metric}]
		if !ok {
			continue
		}

		stats := metric.Measurement
		threshold := stats.Mean + sigma*stats.Stddev
		calculations = append(calculations, model.Calculation{
			Version:    baseline.Version,
			Project:    metric.Project,
			Metric:     metric.Metric,
			Regression: obs.value > threshold,
			Timestamp:  obs.ts,
			Sigma:      sigma,
			Mean:       stats.Mean,
			Stddev:     stats.Stddev,
			Threshold:  threshold,
		})
	}
	return calculations
}

// Regressions runs the full comparison: load every baseline from
// baselineDir, benchmark the projects under projectsDir, pick the
// latest baseline and calculate verdicts with the default 3-sigma
// threshold. Calculations are returned for all matched pairs
// regardless of whether they passed or failed.
func Regressions(logger zerolog.Logger, baselineDir, projectsDir, tmpDir string, metrics []measure.Metric) ([]model.Calculation, error) {
	byPath, err := measure.FromJSONFiles(baselineDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load baselines: %w", err)
	}

	// Iterate in path order so the tie-break on equal versions is
	// deterministic.
	paths := make([]string, 0, len(byPath))
	for path := range byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	baselines := make([]model.Baseline, 0, len(paths))
	for _, path := range paths {
		baselines = append(baselines, byPath[path])
	}

	samples, err := measure.TakeSamples(logger, projectsDir, tmpDir, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to take samples: %w", err)
	}

	baseline, err := SelectBaseline(baselines)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("version", baseline.Version.String()).
		Int("metrics", len(baseline.Metrics)).
		Int("samples", len(samples)).
		Msg("Comparing samples against baseline")

	return CalculateRegressions(samples, baseline, DefaultSigma), nil
}
