package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVec2 parses a 2 component vector from a string like "0.5 1" or "0.5,1".
func ParseVec2(text string) (Vec2, error) {
	values, err := parseFloats(text, 2)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{values[0], values[1]}, nil
}

// ParseVec3 parses a 3 component vector from a string like "1 0.5 0.2" or "1,0.5,0.2".
func ParseVec3(text string) (Vec3, error) {
	values, err := parseFloats(text, 3)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3FromSlice(values)
}

// Vec3FromSlice builds a vector from the first three values of the slice.
func Vec3FromSlice(values []float32) (Vec3, error) {
	if len(values) < 3 {
		return Vec3{}, fmt.Errorf("%w: expected 3; got %d", ErrVectorComponentCount, len(values))
	}
	return Vec3{values[0], values[1], values[2]}, nil
}

func parseFloats(text string, count int) ([]float32, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(tokens) != count {
		return nil, fmt.Errorf("%w: expected %d; got %d in %q", ErrVectorComponentCount, count, len(tokens), text)
	}

	values := make([]float32, count)
	for idx, token := range tokens {
		v, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return nil, fmt.Errorf("types: could not parse component %d of %q: %w", idx, text, err)
		}
		values[idx] = float32(v)
	}
	return values, nil
}
