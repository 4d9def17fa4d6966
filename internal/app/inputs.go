package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"usage-counter/internal/models"
)

// ExpandPeriod turns "YYYY-MM-DD" or "YYYY-MM-DD,YYYY-MM-DD" into the inclusive list of days.
func ExpandPeriod(period string) ([]time.Time, error) {
	bounds := strings.Split(strings.TrimSpace(period), ",")
	if len(bounds) > 2 {
		return nil, fmt.Errorf("invalid period %q: expected YYYY-MM-DD or YYYY-MM-DD,YYYY-MM-DD", period)
	}

	start, err := time.Parse(models.DayLayout, strings.TrimSpace(bounds[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid period start %q: %w", bounds[0], err)
	}
	end := start
	if len(bounds) == 2 {
		end, err = time.Parse(models.DayLayout, strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid period end %q: %w", bounds[1], err)
		}
	}
	if end.Before(start) {
		return nil, fmt.Errorf("invalid period %q: end is before start", period)
	}

	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days, nil
}

// ExpandLogPaths returns path itself for a file, or the regular non-hidden files of a
// directory sorted by name. Each file is counted as its own batch.
func ExpandLogPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat log path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read log directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no log files in %s", path)
	}
	return paths, nil
}
