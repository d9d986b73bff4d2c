package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Keys accepted in a loosely typed bundle. Aliases map to the same field.
var fieldAliases = map[string]string{
	"alpha":   "alpha",
	"beta":    "beta",
	"delta":   "delta",
	"gamma":   "gamma",
	"P0":      "P0",
	"D0":      "D0",
	"t_max":   "t_max",
	"tmax":    "t_max",
	"h":       "h",
	"dt":      "h",
	"n_steps": "n_steps",
}

var requiredFields = []string{"alpha", "beta", "delta", "gamma", "P0", "D0", "t_max"}

// Decode maps a request-style bundle onto an Input. Missing required keys
// and non-numeric values yield ErrMissing, unknown keys ErrUnknownField.
// Optional fields h and n_steps are left zero when absent; when present, h
// must be positive and n_steps a positive integer (ErrStep otherwise).
// n_steps without h is ErrMissing.
func Decode(bundle map[string]any) (Input, error) {
	var in Input
	if bundle == nil {
		return in, ErrMissing
	}

	keys := make([]string, 0, len(bundle))
	for k := range bundle {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]float64, len(bundle))
	for _, k := range keys {
		field, ok := fieldAliases[k]
		if !ok {
			return Input{}, fmt.Errorf("%w %q", ErrUnknownField, k)
		}
		if _, dup := values[field]; dup {
			return Input{}, fmt.Errorf("%w %q (duplicate of %s)", ErrUnknownField, k, field)
		}
		v, ok := toFloat(bundle[k])
		if !ok {
			return Input{}, ErrMissing
		}
		values[field] = v
	}

	for _, f := range requiredFields {
		if _, ok := values[f]; !ok {
			return Input{}, ErrMissing
		}
	}

	in = Input{
		Alpha: values["alpha"],
		Beta:  values["beta"],
		Delta: values["delta"],
		Gamma: values["gamma"],
		P0:    values["P0"],
		D0:    values["D0"],
		TMax:  values["t_max"],
		H:     values["h"],
	}
	if h, ok := values["h"]; ok && !(h > 0) {
		return Input{}, fmt.Errorf("%w, got %v", ErrStep, h)
	}
	if n, ok := values["n_steps"]; ok {
		if _, ok := values["h"]; !ok || n != math.Trunc(n) {
			return Input{}, ErrMissing
		}
		if n < 1 || n > math.MaxInt32 {
			return Input{}, fmt.Errorf("%w: n_steps must be a positive integer, got %v", ErrStep, n)
		}
		in.Steps = int(n)
	}
	return in, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
