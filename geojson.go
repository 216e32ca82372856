package flexiroute

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/kousik-kr/flexiroute/core"
)

// GeoJSON renders a successful Result as a FeatureCollection: the primary
// path as a LineString Feature carrying its metrics as properties, plus one
// additional LineString Feature per alternate (populated only under
// WIDENESS_AND_TURNS). Returns nil if the Result failed.
func (r *Result) GeoJSON(store *core.Store) *geojson.FeatureCollection {
	if !r.Success {
		return nil
	}

	fc := geojson.NewFeatureCollection()
	fc.AddFeature(pathFeature(store, r.PathNodes, map[string]interface{}{
		"travel_time":         r.TravelTime,
		"total_distance":      r.TotalDistance,
		"wideness_percentage": r.WidenessPercentage,
		"wide_edge_count":     r.WideEdgeCount,
		"right_turns":         r.RightTurns,
		"sharp_turns":         r.SharpTurns,
		"routing_mode":        r.RoutingMode.String(),
		"role":                "primary",
	}))

	for i, alt := range r.Alternates {
		fc.AddFeature(pathFeature(store, alt.PathNodes, map[string]interface{}{
			"total_distance":      alt.TotalDistance,
			"wideness_percentage": alt.WidenessPercentage,
			"right_turns":         alt.RightTurns,
			"role":                "alternate",
			"alternate_index":     i,
		}))
	}

	return fc
}

func pathFeature(store *core.Store, nodes []int32, properties map[string]interface{}) *geojson.Feature {
	coords := make([][]float64, 0, len(nodes))
	for _, id := range nodes {
		n, err := store.Node(id)
		if err != nil {
			continue
		}
		coords = append(coords, []float64{n.Lng, n.Lat})
	}

	feature := geojson.NewLineStringFeature(coords)
	for k, v := range properties {
		feature.SetProperty(k, v)
	}
	return feature
}
