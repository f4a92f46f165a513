package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT"`

	// PreferFlats selects flat spellings for enharmonic notes by default.
	// Env: PREFER_FLATS (default: false)
	PreferFlats bool `envconfig:"PREFER_FLATS"`

	// ComfortMargin is the default comfort margin in semitones, applied
	// when a request does not specify one.
	// Env: DEFAULT_COMFORT_MARGIN (default: 2)
	ComfortMargin *int `envconfig:"DEFAULT_COMFORT_MARGIN"`

	// CORSOrigins is a comma-separated list of allowed browser origins.
	// Env: CORS_ORIGINS
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// VoicePresetsFile points at a YAML file of extra voice presets.
	// Env: VOICE_PRESETS_FILE
	VoicePresetsFile string `envconfig:"VOICE_PRESETS_FILE"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig, overriding defaults only
// with values that were actually set.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = cfg.Apply(WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = cfg.Apply(WithPort(e.Port))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	cfg = cfg.Apply(WithPreferFlats(e.PreferFlats))
	if e.ComfortMargin != nil && *e.ComfortMargin >= 0 {
		cfg = cfg.Apply(WithComfortMargin(*e.ComfortMargin))
	}
	if e.CORSOrigins != "" {
		cfg = cfg.Apply(WithCORSOrigins(splitCommaList(e.CORSOrigins)))
	}
	if e.VoicePresetsFile != "" {
		cfg = cfg.Apply(WithVoicePresetsFile(e.VoicePresetsFile))
	}

	return cfg
}

func parseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
