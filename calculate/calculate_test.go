package calculate

import (
	"testing"
	"time"

	"github.com/benchgate/benchgate/model"
	"github.com/stretchr/testify/require"
)

func baselineMetric(project, metric string, ts time.Time) model.BaselineMetric {
	return model.BaselineMetric{
		Project:   project,
		Metric:    metric,
		Timestamp: ts,
		Measurement: model.Measurement{
			Command: "some command",
			Mean:    1.00,
			Stddev:  0.1,
			Median:  1.00,
			User:    1.00,
			System:  1.00,
			Min:     0.00,
			Max:     2.00,
		},
	}
}

func TestCalculateRegressionsDetects3Sigma(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 9, Minor: 9, Patch: 9},
		Metrics: []model.BaselineMetric{baselineMetric("test", "m", ts)},
	}
	samples := []model.Sample{
		{Project: "test", Metric: "m", Value: 1.31, Timestamp: ts},
	}

	calculations := CalculateRegressions(samples, baseline, 3.0)
	require.Len(t, calculations, 1)
	require.Equal(t, model.Calculation{
		Version:    model.Version{Major: 9, Minor: 9, Patch: 9},
		Project:    "test",
		Metric:     "m",
		Regression: true,
		Timestamp:  ts,
		Sigma:      3.0,
		Mean:       1.00,
		Stddev:     0.1,
		Threshold:  1.00 + 3.0*0.1,
	}, calculations[0])
}

func TestCalculateRegressionsPassesNear3Sigma(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 9, Minor: 9, Patch: 9},
		Metrics: []model.BaselineMetric{baselineMetric("test", "m", ts)},
	}
	samples := []model.Sample{
		{Project: "test", Metric: "m", Value: 1.29, Timestamp: ts},
	}

	calculations := CalculateRegressions(samples, baseline, 3.0)
	require.Len(t, calculations, 1)
	require.False(t, calculations[0].Regression)
}

// A sample sitting exactly on the threshold is not a regression: the
// comparison is strictly greater-than.
func TestCalculateRegressionsThresholdBoundary(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 1, Minor: 0, Patch: 0},
		Metrics: []model.BaselineMetric{baselineMetric("test", "m", ts)},
	}
	samples := []model.Sample{
		{Project: "test", Metric: "m", Value: 1.30, Timestamp: ts},
	}

	calculations := CalculateRegressions(samples, baseline, 3.0)
	require.Len(t, calculations, 1)
	require.False(t, calculations[0].Regression)
}

// Pairs present on only one side produce no calculation: a baseline
// metric with no sample is skipped, and a sample with no baseline
// metric is ignored.
func TestCalculateRegressionsDropsUnmatchedPairs(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 1, Minor: 0, Patch: 0},
		Metrics: []model.BaselineMetric{
			baselineMetric("test", "matched", ts),
			baselineMetric("test", "baseline-only", ts),
		},
	}
	samples := []model.Sample{
		{Project: "test", Metric: "matched", Value: 1.0, Timestamp: ts},
		{Project: "test", Metric: "sample-only", Value: 1.0, Timestamp: ts},
	}

	calculations := CalculateRegressions(samples, baseline, 3.0)
	require.Len(t, calculations, 1)
	require.Equal(t, "matched", calculations[0].Metric)
}

// Duplicate sample keys resolve last-write-wins.
func TestCalculateRegressionsDuplicateSamples(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 1, Minor: 0, Patch: 0},
		Metrics: []model.BaselineMetric{baselineMetric("test", "m", ts)},
	}
	samples := []model.Sample{
		{Project: "test", Metric: "m", Value: 1.0, Timestamp: ts},
		{Project: "test", Metric: "m", Value: 2.0, Timestamp: ts},
	}

	calculations := CalculateRegressions(samples, baseline, 3.0)
	require.Len(t, calculations, 1)
	require.True(t, calculations[0].Regression)
}

// The composite key must distinguish project from metric, so a
// project/metric split at a different position never matches.
func TestCalculateRegressionsKeySeparation(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 1, Minor: 0, Patch: 0},
		Metrics: []model.BaselineMetric{baselineMetric("a", "b:c", ts)},
	}
	samples := []model.Sample{
		{Project: "a:b", Metric: "c", Value: 1.0, Timestamp: ts},
	}

	require.Empty(t, CalculateRegressions(samples, baseline, 3.0))
}

func TestCalculateRegressionsOutputOrder(t *testing.T) {
	ts := time.Now().UTC()
	baseline := model.Baseline{
		Version: model.Version{Major: 1, Minor: 0, Patch: 0},
		Metrics: []model.BaselineMetric{
			baselineMetric("b", "m", ts),
			baselineMetric("a", "m", ts),
			baselineMetric("c", "m", ts),
		},
	}
	samples := []model.Sample{
		{Project: "a", Metric: "m", Value: 1.0, Timestamp: ts},
		{Project: "c", Metric: "m", Value: 1.0, Timestamp: ts},
		{Project: "b", Metric: "m", Value: 1.0, Timestamp: ts},
	}

	calculations := CalculateRegressions(samples, baseline, 3.0)
	require.Len(t, calculations, 3)

	// Baseline metric order, not sample order
	require.Equal(t, "b", calculations[0].Project)
	require.Equal(t, "a", calculations[1].Project)
	require.Equal(t, "c", calculations[2].Project)
}

func TestSelectBaselinePicksHighestVersion(t *testing.T) {
	baselines := []model.Baseline{
		{Version: model.Version{Major: 1, Minor: 0, Patch: 0}},
		{Version: model.Version{Major: 2, Minor: 0, Patch: 0}},
		{Version: model.Version{Major: 1, Minor: 9, Patch: 9}},
	}

	selected, err := SelectBaseline(baselines)
	require.NoError(t, err)
	require.Equal(t, model.Version{Major: 2, Minor: 0, Patch: 0}, selected.Version)
}

// On an exact version tie the first baseline in input order wins.
func TestSelectBaselineTieKeepsFirst(t *testing.T) {
	ts := time.Now().UTC()
	baselines := []model.Baseline{
		{
			Version: model.Version{Major: 1, Minor: 0, Patch: 0},
			Metrics: []model.BaselineMetric{baselineMetric("first", "m", ts)},
		},
		{
			Version: model.Version{Major: 1, Minor: 0, Patch: 0},
			Metrics: []model.BaselineMetric{baselineMetric("second", "m", ts)},
		},
	}

	selected, err := SelectBaseline(baselines)
	require.NoError(t, err)
	require.Equal(t, "first", selected.Metrics[0].Project)
}

func TestSelectBaselineEmpty(t *testing.T) {
	_, err := SelectBaseline(nil)
	require.ErrorIs(t, err, ErrNoBaselines)

	_, err = SelectBaseline([]model.Baseline{})
	require.ErrorIs(t, err, ErrNoBaselines)
}
