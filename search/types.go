package search

import (
	"sync"

	"github.com/gotidy/ptr"
)

// Frontier-threshold presets (spec.md §4.5).
const (
	// Aggressive activates the stronger A*-style pruning rule earlier.
	Aggressive = 10
	// Balanced activates it later, exploring more before pruning harder.
	Balanced = 50
)

// SearchConfig configures one Driver run. It replaces the source's
// process-wide FRONTIER_THRESHOLD global with a plain value every query
// carries independently (spec.md §9).
type SearchConfig struct {
	// FrontierThreshold gates the stronger pruning rule: once
	// frontier_count[node] exceeds this, candidates whose projected
	// completion cost exceeds TighteningFactor*C* are dropped.
	FrontierThreshold int

	// TighteningFactor multiplies the current best meeting cost C* when the
	// frontier-threshold pruning rule is active. 1.0 means "no slack".
	TighteningFactor float64

	// Debug enables the post-insert dominance/monotonicity assertion pass
	// (spec.md §7); violations are logged and surfaced as
	// InternalInvariantViolated rather than panicking.
	Debug bool

	// Parallel runs the forward and backward expansions on independent
	// goroutines (spec.md §5's optional parallel Driver) instead of the
	// default single-threaded cooperative loop.
	Parallel bool

	// MaxSpeedOverride pins the heuristic's speed bound instead of deriving
	// it from the Graph & Profile Store (nil = derive it).
	MaxSpeedOverride *float64

	// StepCap bounds the number of expansion steps before the Driver fails
	// with BudgetExhausted even if neither queue is empty yet (spec.md
	// §4.5 "caller-specified step cap").
	StepCap int
}

var (
	defaultMu     sync.Mutex
	defaultConfig = SearchConfig{
		FrontierThreshold: Balanced,
		TighteningFactor:  1.0,
		StepCap:           2_000_000,
	}
)

// DefaultSearchConfig returns a copy of the current package-level default
// configuration. New queries should start from this rather than the zero
// value.
func DefaultSearchConfig() SearchConfig {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultConfig
}

// SetAggressiveMode sets the default FrontierThreshold to Aggressive (10).
// Only subsequently constructed SearchConfigs inherit it; queries already
// running with their own SearchConfig value are unaffected.
func SetAggressiveMode() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig.FrontierThreshold = Aggressive
}

// SetBalancedMode sets the default FrontierThreshold to Balanced (50).
func SetBalancedMode() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig.FrontierThreshold = Balanced
}

// ConfigureMaxSpeedOverride sets (or clears, via nil) the default heuristic
// speed-bound override inherited by new SearchConfigs.
func ConfigureMaxSpeedOverride(metersPerMinute *float64) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig.MaxSpeedOverride = metersPerMinute
}

// Option configures a SearchConfig via functional options.
type Option func(*SearchConfig)

// WithFrontierThreshold overrides FrontierThreshold directly.
func WithFrontierThreshold(n int) Option {
	return func(c *SearchConfig) { c.FrontierThreshold = n }
}

// WithTighteningFactor overrides TighteningFactor.
func WithTighteningFactor(f float64) Option {
	return func(c *SearchConfig) { c.TighteningFactor = f }
}

// WithDebug enables the debug assertion pass.
func WithDebug() Option {
	return func(c *SearchConfig) { c.Debug = true }
}

// WithParallel enables the parallel forward/backward Driver.
func WithParallel() Option {
	return func(c *SearchConfig) { c.Parallel = true }
}

// WithMaxSpeedOverride pins the heuristic's speed bound for this query.
func WithMaxSpeedOverride(metersPerMinute float64) Option {
	return func(c *SearchConfig) { c.MaxSpeedOverride = ptr.Float64(metersPerMinute) }
}

// WithStepCap overrides the expansion step cap.
func WithStepCap(n int) Option {
	return func(c *SearchConfig) { c.StepCap = n }
}

// NewSearchConfig builds a SearchConfig starting from the current default
// and applying opts.
func NewSearchConfig(opts ...Option) SearchConfig {
	cfg := DefaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
