package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Collection  string            `mapstructure:"collection" validate:"required,len=3"`
	Database    DatabaseConfig    `mapstructure:"database" validate:"required"`
	LogStore    LogStoreConfig    `mapstructure:"log_store"`
	Lookups     LookupsConfig     `mapstructure:"lookups"`
	Session     SessionConfig     `mapstructure:"session" validate:"required"`
	Counting    CountingConfig    `mapstructure:"counting" validate:"required"`
	Sink        SinkConfig        `mapstructure:"sink"`
	Classifier  ClassifierConfig  `mapstructure:"classifier"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration (uploaded batches).
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// DatabaseConfig holds the connection to the counter schema (Metric Sink) and,
// when reading by period, the Matomo log tables.
type DatabaseConfig struct {
	Dialect string `mapstructure:"dialect" validate:"required,oneof=postgres sqlite3"`
	DSN     string `mapstructure:"dsn" validate:"required"`
}

// LogStoreConfig identifies the site whose actions are read from the log store.
type LogStoreConfig struct {
	IDSite      int    `mapstructure:"idsite" validate:"omitempty,min=1"`
	TablePrefix string `mapstructure:"table_prefix"`
}

// LookupsConfig holds the paths of the auxiliary lookup tables. Every path is optional.
type LookupsConfig struct {
	PIDToISSN       string `mapstructure:"pid_to_issn"`
	PDFToPID        string `mapstructure:"pdf_to_pid"`
	ISSNToAcronym   string `mapstructure:"issn_to_acronym"`
	PIDToFormatLang string `mapstructure:"pid_to_format_lang"`
	PIDToYOP        string `mapstructure:"pid_to_yop"`
}

// SessionConfig holds the session key and double-click parameters.
type SessionConfig struct {
	Granularity       string `mapstructure:"granularity" validate:"required,oneof=minute hour day"`
	DoubleClickWindow int    `mapstructure:"double_click_window" validate:"required,min=1"` // seconds
}

// CountingConfig holds batch processing options.
type CountingConfig struct {
	FlushOnAddressChange bool `mapstructure:"flush_on_address_change"`
	Workers              int  `mapstructure:"workers" validate:"required,min=1,max=64"`
}

// SinkConfig holds Metric Sink options.
type SinkConfig struct {
	RequireJournal bool `mapstructure:"require_journal"`
}

// ClassifierConfig overrides the collection to domain table.
type ClassifierConfig struct {
	Domains map[string][]string `mapstructure:"domains"`
}
