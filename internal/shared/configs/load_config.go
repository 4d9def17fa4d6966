package configs

import (
	"fmt"
	"strings"

	"usage-counter/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "USAGE_COUNTER"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
// Environment variables are named USAGE_COUNTER_<SECTION>_<KEY>, e.g. USAGE_COUNTER_DATABASE_DSN.
// A .env file in the working directory is loaded first when present.
var LoadConfig = func(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("file_storage.root_dir", "./data")
	v.SetDefault("database.dialect", "postgres")
	v.SetDefault("log_store.table_prefix", "matomo_")
	v.SetDefault("session.granularity", "hour")
	v.SetDefault("session.double_click_window", 30)
	v.SetDefault("counting.workers", 1)
	v.SetDefault("sink.require_journal", true)

	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("database.dsn", "")
	v.SetDefault("collection", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "Config.Session.Granularity" -> "session.granularity")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "len":
		msg = fmt.Sprintf("%s (len=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
