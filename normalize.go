package csv2docx

import (
	"fmt"
	"strings"
)

// NormalizeValue cleans a raw field value.
//
// Strings lose surrounding whitespace and one double quote at each end; the
// two steps repeat until nothing changes, so normalizing twice equals
// normalizing once. Sequences are normalized element-wise and joined with
// ", " (non-string elements use their fmt representation). Anything else is
// formatted with fmt.Sprint; nil becomes "".
func NormalizeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeString(x)
	case []string:
		parts := make([]string, len(x))
		for i, s := range x {
			parts[i] = normalizeString(s)
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			if s, ok := e.(string); ok {
				parts[i] = normalizeString(s)
			} else {
				parts[i] = fmt.Sprint(e)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}

func normalizeString(s string) string {
	for {
		t := strings.TrimSpace(s)
		t = strings.TrimPrefix(t, `"`)
		t = strings.TrimSuffix(t, `"`)
		if t == s {
			return t
		}
		s = t
	}
}

// NormalizeRow returns a copy of fields with every value normalized.
func NormalizeRow(fields map[string]string) Row {
	row := make(Row, len(fields))
	for k, v := range fields {
		row[k] = normalizeString(v)
	}
	return row
}
