package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dump renders a Go value as canonical PHP literal source. It is the
// single literal formatter used project-wide for constant values and
// property/parameter defaults.
//
// Map keys are emitted in sorted order so the literal itself is
// deterministic; everywhere else insertion order rules.
func Dump(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return dumpString(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return dumpFloat(float64(val))
	case float64:
		return dumpFloat(val)
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = Dump(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = dumpString(k) + " => " + Dump(val[k])
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// dumpFloat keeps float literals distinguishable from integers.
func dumpFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// dumpString single-quotes s, escaping backslashes and quotes.
func dumpString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}
