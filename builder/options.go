// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Defaults.
const (
	DefaultSeed    = int64(1)
	DefaultSpacing = 10.0
	DefaultFirstID = 1
)

// builderConfig is the resolved, immutable option set passed to constructors.
type builderConfig struct {
	rng     *rand.Rand
	spacing float64
	jitter  float64
	firstID int
}

// BuilderOption customizes Build.
type BuilderOption func(*builderConfig)

// WithSeed seeds the generator used by RandomSparse and jitter.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the layout unit. Panics on non-positive values.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithSpacing requires s > 0")
	}
	return func(c *builderConfig) { c.spacing = s }
}

// WithJitter displaces every coordinate by a uniform offset in [-j, j).
// Panics on negative values.
func WithJitter(j float64) BuilderOption {
	if j < 0 {
		panic("builder: WithJitter requires j >= 0")
	}
	return func(c *builderConfig) { c.jitter = j }
}

// WithFirstID sets the id of the first generated vertex.
func WithFirstID(id int) BuilderOption {
	return func(c *builderConfig) { c.firstID = id }
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing: DefaultSpacing,
		firstID: DefaultFirstID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
