package configs

// Config holds all configuration for the application.
type Config struct {
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Analyzer AnalyzerConfig `mapstructure:"analyzer" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	File       string `mapstructure:"file"`                        // empty: stdout
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=1"` // rotation threshold for File
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"` // rotated files kept
}

// AnalyzerConfig holds the report pipeline configuration.
type AnalyzerConfig struct {
	LogDir         string  `mapstructure:"log_dir" validate:"required"`
	LogFilePrefix  string  `mapstructure:"log_file_prefix" validate:"required"`
	ReportDir      string  `mapstructure:"report_dir" validate:"required"`
	ReportSize     int     `mapstructure:"report_size" validate:"min=0"`
	FailurePercent float64 `mapstructure:"failure_percent" validate:"min=0,max=100"` // share of lines allowed to fail parsing
	Template       string  `mapstructure:"template"`                                 // empty: embedded template
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // node-exporter textfile written after each run
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// WatchConfig holds log directory watcher configuration.
type WatchConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	DebounceMs int  `mapstructure:"debounce_ms" validate:"min=0"`
}
