// SPDX-License-Identifier: Apache-2.0

// Package sanitize scrubs untrusted request input before handlers read it.
//
// Two classes of input are neutralized:
//   - script-injection payloads in string values (cross-site scripting),
//     handled by HTML-escaping angle brackets and quotes;
//   - operator injection against the document database, handled by dropping
//     object keys that start with '$' or contain '.'.
package sanitize

import (
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"
)

// String neutralizes script-injection patterns in a single value by
// HTML-escaping it. Safe to call repeatedly only on raw input; escaping is
// not idempotent.
func String(s string) string {
	return html.EscapeString(s)
}

// Values sanitizes every value of a URL query or form value set in place
// and returns it.
func Values(values url.Values) url.Values {
	for key, list := range values {
		for i, v := range list {
			list[i] = String(v)
		}
		values[key] = list
	}
	return values
}

// JSONBody sanitizes a raw JSON document: string values are escaped and
// dangerous object keys are dropped. The input must be valid JSON; the
// sanitized document is re-marshaled and returned.
func JSONBody(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("sanitize: invalid JSON body: %w", err)
	}

	cleaned, err := json.Marshal(value(doc))
	if err != nil {
		return nil, fmt.Errorf("sanitize: re-encoding body: %w", err)
	}

	return cleaned, nil
}

// value walks an unmarshaled JSON tree, escaping strings and dropping
// operator-shaped keys.
func value(v any) any {
	switch typed := v.(type) {
	case string:
		return String(typed)
	case []any:
		for i, item := range typed {
			typed[i] = value(item)
		}
		return typed
	case map[string]any:
		for key, item := range typed {
			if dangerousKey(key) {
				delete(typed, key)
				continue
			}
			typed[key] = value(item)
		}
		return typed
	default:
		return v
	}
}

// dangerousKey reports whether an object key could be interpreted as a
// query operator or a field path by the document database.
func dangerousKey(key string) bool {
	return strings.HasPrefix(key, "$") || strings.Contains(key, ".")
}
