package vocal

import "log/slog"

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	logger        *slog.Logger
	presetsFile   string
	defaultMargin int
	preferFlats   bool
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		logger: slog.Default(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithLogger sets the logger used by the client's services.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithVoicePresetsFile merges voice presets from a YAML file over the
// builtin voice types.
func WithVoicePresetsFile(path string) Option {
	return func(c *clientConfig) {
		c.presetsFile = path
	}
}

// WithDefaultComfortMargin sets the margin applied when a request does
// not specify one.
func WithDefaultComfortMargin(semitones int) Option {
	return func(c *clientConfig) {
		if semitones >= 0 {
			c.defaultMargin = semitones
		}
	}
}

// WithPreferFlats sets the default enharmonic spelling preference.
func WithPreferFlats(preferFlats bool) Option {
	return func(c *clientConfig) {
		c.preferFlats = preferFlats
	}
}
