package flexiroute

import (
	"github.com/goccy/go-json"
)

// MarshalResult encodes a Result as JSON using goccy/go-json, matching the
// serialization library angelodlfrtr-valhalla-http-client-go wires its
// request/response bodies through.
func (r *Result) MarshalResult() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalQuery decodes a Query from JSON.
func UnmarshalQuery(data []byte) (Query, error) {
	var q Query
	if err := json.Unmarshal(data, &q); err != nil {
		return Query{}, err
	}
	return q, nil
}
