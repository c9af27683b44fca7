// ABOUTME: Options controlling which enrichment stages run on a batch
// ABOUTME: Defaults keep every stage enabled

package services

// EnrichmentConfig controls which enrichment stages are enabled
type EnrichmentConfig struct {
	// ExtractMetadata controls the page metadata fill stage
	ExtractMetadata bool

	// ExtractColors controls the thumbnail color stage
	ExtractColors bool
}

// DefaultEnrichmentConfig returns the default configuration with all stages enabled
func DefaultEnrichmentConfig() EnrichmentConfig {
	return EnrichmentConfig{
		ExtractMetadata: true,
		ExtractColors:   true,
	}
}

// EnrichmentOption is a functional option for configuring enrichment
type EnrichmentOption func(*EnrichmentConfig)

// WithMetadata enables or disables the metadata stage
func WithMetadata(enabled bool) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.ExtractMetadata = enabled
	}
}

// WithColors enables or disables the color stage
func WithColors(enabled bool) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.ExtractColors = enabled
	}
}

// WithoutMetadata disables the metadata stage
func WithoutMetadata() EnrichmentOption {
	return WithMetadata(false)
}

// WithoutColors disables the color stage
func WithoutColors() EnrichmentOption {
	return WithColors(false)
}

// NewEnrichmentConfig creates a new enrichment configuration with the given options
func NewEnrichmentConfig(opts ...EnrichmentOption) EnrichmentConfig {
	config := DefaultEnrichmentConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
