package layers

// Attribute values come straight from a decoded JSON descriptor, so numbers
// arrive as float64 and geometry fields may be a scalar or a list. The
// helpers below coerce them for parameter counting; property maps pass the
// declared value through unchanged.

func attrOr(attrs map[string]any, key string, fallback any) any {
	if v, ok := attrs[key]; ok && v != nil {
		return v
	}
	return fallback
}

func intAttr(attrs map[string]any, key string, fallback int) int {
	v, ok := attrs[key]
	if !ok || v == nil {
		return fallback
	}
	if n, ok := asInt(v); ok {
		return n
	}
	return fallback
}

func floatAttr(attrs map[string]any, key string, fallback float64) float64 {
	v, ok := attrs[key]
	if !ok || v == nil {
		return fallback
	}
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case int:
		return float64(f)
	}
	return fallback
}

func boolAttr(attrs map[string]any, key string, fallback bool) bool {
	if v, ok := attrs[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	}
	return 0, false
}

// dimsAttr coerces a geometry attribute (scalar or list) into per-dimension
// sizes of the given spatial rank. A scalar k broadcasts to [k, k, ...].
func dimsAttr(attrs map[string]any, key string, rank, fallback int) []int {
	dims := make([]int, rank)
	for i := range dims {
		dims[i] = fallback
	}

	v, ok := attrs[key]
	if !ok || v == nil {
		return dims
	}

	if n, ok := asInt(v); ok {
		for i := range dims {
			dims[i] = n
		}
		return dims
	}

	if list, ok := v.([]any); ok {
		for i := 0; i < rank && i < len(list); i++ {
			if n, ok := asInt(list[i]); ok {
				dims[i] = n
			}
		}
	}
	return dims
}

func product(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}
