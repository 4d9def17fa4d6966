package lookups

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"usage-counter/internal/shared/configs"
	"usage-counter/internal/shared/loggers"

	"gopkg.in/yaml.v3"
)

// Load reads every configured table and returns indexed Tables. Empty paths are skipped.
// Files ending in .yml or .yaml are decoded as YAML, anything else as JSON.
func Load(ctx context.Context, cfg configs.LookupsConfig) (*Tables, error) {
	tables := &Tables{}

	sources := []struct {
		name string
		path string
		into any
	}{
		{name: "pid_to_issn", path: cfg.PIDToISSN, into: &tables.PIDToISSN},
		{name: "pdf_to_pid", path: cfg.PDFToPID, into: &tables.PDFToPID},
		{name: "issn_to_acronym", path: cfg.ISSNToAcronym, into: &tables.ISSNToAcronym},
		{name: "pid_to_format_lang", path: cfg.PIDToFormatLang, into: &tables.PIDToFormatLang},
		{name: "pid_to_yop", path: cfg.PIDToYOP, into: &tables.PIDToYOP},
	}

	for _, source := range sources {
		if source.path == "" {
			loggers.Ctx(ctx).Info().Str(loggers.FieldComponent, "lookups").Msgf("table %s not configured", source.name)
			continue
		}
		if err := decodeFile(source.path, source.into); err != nil {
			return nil, fmt.Errorf("failed to load lookup table %s: %w", source.name, err)
		}
		loggers.Ctx(ctx).Info().Str(loggers.FieldComponent, "lookups").Msgf("loaded table %s from %s", source.name, source.path)
	}

	tables.Index()
	return tables, nil
}

func decodeFile(path string, into any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.NewDecoder(file).Decode(into)
	default:
		return json.NewDecoder(file).Decode(into)
	}
}
