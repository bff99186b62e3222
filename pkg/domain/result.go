package domain

import "math"

// Result is the tagged outcome of a single Tick.
type Result struct {
	// Value is whatever the node's Execute returned. Composites return nil.
	Value any
	// Skipped is true when the actor's gate was closed and nothing ran.
	Skipped bool
}

// Bool interprets the value as a selector directive.
func (r Result) Bool() (bool, error) {
	b, ok := r.Value.(bool)
	if !ok {
		return false, &ResultTypeError{Want: "bool", Got: r.Value}
	}
	return b, nil
}

// Index interprets the value as a child position. Any Go integer kind is accepted.
// Values that do not fit in an int fail with *IndexError; range validation
// against the number of children is left to the caller.
func (r Result) Index() (int, error) {
	switch v := r.Value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, &IndexError{Value: v}
		}
		return int(v), nil
	case uint:
		if v > math.MaxInt {
			return 0, &IndexError{Value: v}
		}
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, &IndexError{Value: v}
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, &IndexError{Value: v}
		}
		return int(v), nil
	default:
		return 0, &ResultTypeError{Want: "integer", Got: r.Value}
	}
}
