package flexiroute

import (
	"sync"

	"github.com/kousik-kr/flexiroute/search"
)

var (
	defaultsMu            sync.Mutex
	defaultWidthThreshold float64
)

// ConfigureDefaults sets the process-wide defaults a loader should apply
// when building a new Store (widthThreshold) and the Driver should apply to
// its search heuristic (maxSpeedOverride, nil to derive it from the Store),
// matching spec.md §6's configure_defaults(). Because a core.Store is
// immutable once built, widthThreshold only affects Stores built after this
// call via core.WithWidthThreshold(DefaultWidthThreshold()); it cannot
// retroactively change an already-built Store.
func ConfigureDefaults(widthThreshold float64, maxSpeedOverride *float64) {
	defaultsMu.Lock()
	defaultWidthThreshold = widthThreshold
	defaultsMu.Unlock()

	search.ConfigureMaxSpeedOverride(maxSpeedOverride)
}

// DefaultWidthThreshold returns the width threshold last set via
// ConfigureDefaults (zero if never called).
func DefaultWidthThreshold() float64 {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaultWidthThreshold
}

// SetAggressiveMode sets the default SearchConfig.FrontierThreshold to
// search.Aggressive (10) for subsequently constructed configs.
func SetAggressiveMode() { search.SetAggressiveMode() }

// SetBalancedMode sets the default SearchConfig.FrontierThreshold to
// search.Balanced (50) for subsequently constructed configs.
func SetBalancedMode() { search.SetBalancedMode() }
