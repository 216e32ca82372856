package flexiroute

import "github.com/kousik-kr/flexiroute/labelset"

// Query describes one routing request (spec.md §4.7).
type Query struct {
	Source      int32
	Destination int32

	// DepartureTime is minutes-from-midnight.
	DepartureTime float64

	// Interval, if > 0, enables departure-time window search: the façade
	// enumerates DepartureTime + k*Interval for k = 0..K-1 (K fixed by the
	// Graph & Profile Store's breakpoint count) and reports the best.
	Interval float64

	// Budget is the elapsed-cost ceiling (minutes).
	Budget float64

	RoutingMode labelset.RoutingMode
}
