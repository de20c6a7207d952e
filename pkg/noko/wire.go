package noko

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the date-only form Noko expects everywhere.
const dateLayout = "2006-01-02"

// boolToWire maps native booleans to the lower-case string form Noko's
// encoding expects. String inputs are lower-cased; anything else,
// including nil, passes through untouched. Invalid values are caught by
// the schema layer or rejected by the API itself.
func boolToWire(v any) any {
	switch b := v.(type) {
	case bool:
		if b {
			return "true"
		}
		return "false"
	case string:
		return strings.ToLower(b)
	}
	return v
}

// dateToWire formats time values as YYYY-MM-DD. Strings pass through
// without validation; formatDate wraps this with the parse check.
func dateToWire(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(dateLayout)
	}
	return v
}

// timestampToWire truncates time values to whole seconds and appends the
// literal Z Noko expects. Strings pass through.
func timestampToWire(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02T15:04:05") + "Z"
	}
	return v
}

// idListToWire turns an ID list into the comma-separated string form used
// by query-string filters. A bare string is already in wire form; single
// scalars are stringified.
func idListToWire(v any) any {
	switch ids := v.(type) {
	case nil:
		return nil
	case string:
		return ids
	case []string:
		return strings.Join(ids, ",")
	case []int:
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		return strings.Join(parts, ",")
	case []any:
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprint(id)
		}
		return strings.Join(parts, ",")
	case int:
		return strconv.Itoa(ids)
	case int64:
		return strconv.FormatInt(ids, 10)
	}
	return v
}

// idListToInts coerces each element of an ID list to an integer, dropping
// anything that will not convert. Noko's bulk endpoints ignore unknown
// IDs, so the client mirrors that tolerance locally instead of failing
// the whole call. Dropped elements are logged.
func idListToInts(v any) []int {
	var items []any
	switch ids := v.(type) {
	case nil:
		return nil
	case []int:
		return append([]int(nil), ids...)
	case []any:
		items = ids
	case []string:
		items = make([]any, len(ids))
		for i, id := range ids {
			items[i] = id
		}
	default:
		items = []any{v}
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		// A comma-joined string is the query-filter wire form; split it
		// into its segments before converting each one.
		if s, ok := item.(string); ok && strings.Contains(s, ",") {
			for _, seg := range strings.Split(s, ",") {
				n, err := toInt(seg)
				if err != nil {
					slog.Info("dropping id with no integer form", slog.Any("value", seg))
					continue
				}
				out = append(out, n)
			}
			continue
		}
		n, err := toInt(item)
		if err != nil {
			slog.Info("dropping id with no integer form", slog.Any("value", item))
			continue
		}
		out = append(out, n)
	}
	return out
}

// toInt converts the scalar forms IDs arrive in.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	}
	return 0, fmt.Errorf("cannot convert %T to an id", v)
}
