// Package config provides application configuration.
package config

import (
	"fmt"
)

// Default configuration values.
const (
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 8080
	DefaultLogLevel      = "INFO"
	DefaultComfortMargin = 2
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the immutable application configuration.
type AppConfig struct {
	host             string
	port             int
	logLevel         string
	logFormat        LogFormat
	preferFlats      bool
	comfortMargin    int
	corsOrigins      []string
	voicePresetsFile string
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:          DefaultHost,
		port:          DefaultPort,
		logLevel:      DefaultLogLevel,
		logFormat:     LogFormatPretty,
		comfortMargin: DefaultComfortMargin,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// PreferFlats returns the default enharmonic spelling preference.
func (c AppConfig) PreferFlats() bool { return c.preferFlats }

// ComfortMargin returns the comfort margin applied when a request does
// not specify one.
func (c AppConfig) ComfortMargin() int { return c.comfortMargin }

// CORSOrigins returns the allowed CORS origins for browser clients.
func (c AppConfig) CORSOrigins() []string {
	out := make([]string, len(c.corsOrigins))
	copy(out, c.corsOrigins)
	return out
}

// VoicePresetsFile returns the path of the optional voice presets YAML
// file, or empty when only builtins are used.
func (c AppConfig) VoicePresetsFile() string { return c.voicePresetsFile }

// AppConfigOption mutates an AppConfig during construction.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithLogLevel sets the log verbosity level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log output format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithPreferFlats sets the default spelling preference.
func WithPreferFlats(preferFlats bool) AppConfigOption {
	return func(c *AppConfig) { c.preferFlats = preferFlats }
}

// WithComfortMargin sets the default comfort margin.
func WithComfortMargin(semitones int) AppConfigOption {
	return func(c *AppConfig) { c.comfortMargin = semitones }
}

// WithCORSOrigins sets the allowed CORS origins.
func WithCORSOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) { c.corsOrigins = origins }
}

// WithVoicePresetsFile sets the voice presets file path.
func WithVoicePresetsFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.voicePresetsFile = path }
}

// Apply returns a copy of the config with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
