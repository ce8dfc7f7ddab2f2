// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// decodeList parses a jsonb array column into a slice. NULL, empty, or
// malformed input degrades to an empty slice — list fields are always
// arrays on the wire, never null.
func decodeList(raw []byte) []any {
	if len(raw) == 0 {
		return []any{}
	}
	var out []any
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []any{}
	}
	return out
}

// decodeObject parses a jsonb object column into a map. NULL, empty, or
// malformed input degrades to an empty object.
func decodeObject(raw []byte) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// encodeList serializes a wire value into jsonb array text. Anything that
// is not a slice becomes "[]".
func encodeList(v any) string {
	switch val := v.(type) {
	case nil:
		return "[]"
	case string:
		// Pass through stored text if it already parses as an array.
		if list := decodeList([]byte(val)); len(list) > 0 || val == "[]" {
			b, _ := json.Marshal(list)
			return string(b)
		}
		return "[]"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "[]"
		}
		if len(decodeList(b)) == 0 && string(b) != "[]" {
			return "[]"
		}
		return string(b)
	}
}

// encodeObject serializes a wire value into jsonb object text. Anything
// that is not an object becomes "{}".
func encodeObject(v any) string {
	switch val := v.(type) {
	case nil:
		return "{}"
	case string:
		if obj := decodeObject([]byte(val)); len(obj) > 0 || val == "{}" {
			b, _ := json.Marshal(obj)
			return string(b)
		}
		return "{}"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "{}"
		}
		if len(decodeObject(b)) == 0 && string(b) != "{}" {
			return "{}"
		}
		return string(b)
	}
}

// toText coerces an arbitrary JSON-decoded value to a string.
func toText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// toRef coerces a wire identifier (string or JSON number) into an int64.
// Returns false for absent, blank, or unparseable values.
func toRef(v any) (int64, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return 0, false
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	default:
		return 0, false
	}
}
