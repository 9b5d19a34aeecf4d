package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMassBins parses a "low-high,low-high,..." specification into an
// ordered bin slice. An empty specification yields no bins.
func ParseMassBins(spec string) ([]MassBin, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ",")
	bins := make([]MassBin, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)

		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid mass bin %q: want low-high", part)
		}

		low, err := strconv.ParseFloat(bounds[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mass bin %q: %w", part, err)
		}

		high, err := strconv.ParseFloat(bounds[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mass bin %q: %w", part, err)
		}

		bins = append(bins, MassBin{Low: low, High: high})
	}

	return bins, nil
}

// ParseTagList splits a comma-separated tag list, dropping empty entries so
// an empty input never becomes a one-element list.
func ParseTagList(s string) []string {
	tags := make([]string, 0)

	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
