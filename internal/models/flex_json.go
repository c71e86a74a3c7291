package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that accepts both native JSON numbers and
// string-encoded numbers. ESPN serves most stat values as numbers but some
// categories ship them quoted ("4839" or "4,839").
type FlexFloat float64

// UnmarshalJSON implements flexible JSON unmarshaling for FlexFloat.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	// Fast path: native number
	if data[0] != '"' {
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("flex float: %w", err)
		}
		*f = FlexFloat(n)
		return nil
	}

	// Slow path: quoted value, coerce
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flex float: %w", err)
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex float %q: %w", s, err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("flex float %q: not a finite number", s)
	}
	*f = FlexFloat(n)
	return nil
}

// Float64 returns the plain value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}
