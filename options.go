package slidemaker

import "time"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout      time.Duration
	templateName string
	assetPath    string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("slidemaker: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithTemplate selects the template set by name. Defaults to "default".
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath adds a custom asset directory searched before the built-in
// template sets. Its templates/<name>/ directories override built-in sets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithIDGenerator replaces the deck ID generator (random UUIDs by default).
func WithIDGenerator(fn func() string) Option {
	return func(c *Converter) {
		if fn != nil {
			c.newID = fn
		}
	}
}
