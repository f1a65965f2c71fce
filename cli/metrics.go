package cli

// This file contains parsing of --command flags into benchmark metric
// definitions.

import (
	"fmt"
	"strings"

	"github.com/benchgate/benchgate/measure"
)

func parseMetricFlags(values []string) ([]measure.Metric, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no benchmark commands specified: provide at least one --command name=<shell command>")
	}

	metrics := make([]measure.Metric, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		name, command, ok := strings.Cut(value, "=")
		if !ok || name == "" || command == "" {
			return nil, fmt.Errorf("invalid --command value %q: expected name=<shell command>", value)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate benchmark command name %q", name)
		}
		seen[name] = true

		metrics = append(metrics, measure.Metric{
			Name:    name,
			Command: command,
		})
	}

	return metrics, nil
}
