package configs

import (
	"fmt"
	"strings"

	"log-analyzer/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOG_ANALYZER"

// defaults mirrors the values the analyzer historically shipped with.
var defaults = map[string]any{
	"log.level":       "info",
	"log.file":        "",
	"log.max_size_mb": 100,
	"log.max_backups": 3,

	"analyzer.log_dir":         "./logs/nginx",
	"analyzer.log_file_prefix": "nginx-access-ui.log-",
	"analyzer.report_dir":      "./reports",
	"analyzer.report_size":     1000,
	"analyzer.failure_percent": 50,
	"analyzer.template":        "",

	"metrics.textfile": "",

	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       10,
	"server.idle_timeout":        60,

	"watch.enabled":     true,
	"watch.debounce_ms": 500,
}

// LoadConfig reads configuration from file, applies defaults and environment overrides, and validates it.
// An empty configPath skips the file and uses defaults and environment only.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// LOG_ANALYZER_ANALYZER_LOG_DIR overrides analyzer.log_dir
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
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

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path from the mapstructure names (e.g., "Config.analyzer.report_size" -> "analyzer.report_size")
	if e.Namespace() != "" {
		parts := strings.Split(e.Namespace(), ".")
		if len(parts) >= 2 {
			field = strings.Join(parts[1:], ".")
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
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
