// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption (declared in options.go), a function that
// mutates a builderConfig. builderConfig holds:
//   - rng:      *rand.Rand source for randomness (nil → deterministic).
//   - idFn:     IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//   - leftPrefix/rightPrefix: bipartite partition label prefixes.
//   - amplitude/frequency/trendK/noiseSigma: sequence-dataset defaults.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption (declared in options.go) customizes the behavior of a graph
// constructor by mutating a builderConfig before graph construction begins.

// builderConfig holds the configurable parameters for graph builders:
//   - rng:      source of randomness (nil means deterministic).
//   - idFn:     function mapping index→vertex ID (IDFn).
//   - weightFn: function mapping rng→edge weight (WeightFn).
//   - leftPrefix/rightPrefix: bipartite partition label prefixes.
//   - amplitude/frequency/trendK/noiseSigma: shared defaults for the
//     sequence-dataset constructors (Pulse/Chirp/OHLC).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights

	leftPrefix  string // bipartite left-partition ID prefix, default "L"
	rightPrefix string // bipartite right-partition ID prefix, default "R"

	amplitude  float64 // sequence amplitude A, default defAmp
	frequency  float64 // sequence base frequency f0, default defBaseFreq
	trendK     float64 // sequence linear trend coefficient, default defTrendSlope
	noiseSigma float64 // sequence Gaussian noise sigma, default defSigma
}

// Default bipartite partition prefixes, resolved by newBuilderConfig when
// WithPartitionPrefix is not supplied (or supplied with empty strings).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" partition
// prefixes, and the shared sequence defaults.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Initialize defaults
	cfg := &builderConfig{
		rng:      nil,             // no RNG → deterministic ID and weight functions
		idFn:     DefaultIDFn,     // decimal IDs "0","1",…
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight

		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,

		amplitude:  defAmp,
		frequency:  defBaseFreq,
		trendK:     defTrendSlope,
		noiseSigma: defSigma,
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	// Empty prefixes (e.g. WithPartitionPrefix("", "")) fall back to defaults
	// rather than producing unlabeled vertex IDs.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return *cfg
}
