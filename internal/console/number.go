package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts an answer to a number. Anything that does not parse,
// including an empty answer, becomes NaN. Out-of-range values keep the
// infinity strconv reports.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// FormatNumber renders a number the shortest way that round-trips, without an
// exponent for ordinary magnitudes. 10 renders as "10", 1.5 as "1.5".
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		// also folds -0
		return "0"
	case math.IsNaN(v), math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case math.Abs(v) >= 1e21 || math.Abs(v) < 1e-6:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Render joins values with single spaces. Floats go through FormatNumber,
// everything else through fmt's default formatting.
func Render(values ...any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case float64:
			parts = append(parts, FormatNumber(n))
		case float32:
			parts = append(parts, FormatNumber(float64(n)))
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, " ")
}
