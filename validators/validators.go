// Package validators holds the request validation rules as explicit ordered
// lists of predicate functions. Each handler runs its rule chain left to
// right and stops at the first failure, so the client always sees the first
// violated rule only.
package validators

import (
	"math"

	"github.com/yeremiapane/restaurant-reservation/utils"
)

// ErrMissingPayload is returned when a request carries no data envelope.
func ErrMissingPayload() *utils.APIError {
	return utils.ValidationError("Missing input fields.")
}

// missing mirrors the client-side presence check: nil, empty strings and
// numeric zero all count as absent.
func missing(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	}
	return false
}

// finiteNumber reports whether v decoded as a usable JSON number.
func finiteNumber(v interface{}) (float64, bool) {
	n, ok := v.(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
