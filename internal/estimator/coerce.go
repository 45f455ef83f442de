package estimator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// truthy follows the usual dynamic-language notion of truth: zero values,
// empty strings and empty collections are false, everything else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case []string:
		return len(x) > 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

// stringOr returns v when it is a non-empty string, def otherwise.
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// stringify renders v the way a dynamic runtime would print it,
// so that 2 becomes "2" and 2.0 becomes "2.0".
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return formatDecimal(float64(x))
	case float64:
		return formatDecimal(x)
	default:
		return fmt.Sprint(x)
	}
}

// formatDecimal prints the shortest representation of f, keeping a trailing ".0" on integral values.
func formatDecimal(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toFloat parses v as a float. Empty, unparseable and NaN values are absent.
// Overflowing input such as "1e999" parses to ±Inf and is kept, like "inf" itself.
func toFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case bool:
		if x {
			f = 1
		}
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	case json.Number:
		parsed, ok := parseFloat(strings.TrimSpace(x.String()))
		if !ok {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		parsed, ok := parseFloat(s)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseFloat accepts out-of-range results: ParseFloat reports them with ErrRange
// alongside ±Inf or a signed zero.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// toInt parses v as an integer, going through float and truncating toward zero ("2024.7" is 2024).
// Infinite values are absent. Finite values beyond the int range saturate.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	}

	f, ok := toFloat(v)
	if !ok || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	switch {
	case t >= math.MaxInt:
		return math.MaxInt, true
	case t <= math.MinInt:
		return math.MinInt, true
	}
	return int(t), true
}

// toStringList accepts a list of strings or one comma-separated string.
// Items of a list are kept verbatim; items of a comma-separated string are trimmed and empties dropped.
func toStringList(v any) []string {
	switch x := v.(type) {
	case string:
		parts := strings.Split(x, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// roundTo rounds v to the given number of decimal places using exact decimal conversion.
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
