package submit

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// BodyFormat controls how the payload is serialized into an HTTP body.
type BodyFormat string

const (
	// FormatFormURLEncoded emits application/x-www-form-urlencoded bodies.
	FormatFormURLEncoded BodyFormat = "form"
	// FormatJSON emits application/json bodies.
	FormatJSON BodyFormat = "json"
	// FormatPrettyText emits a human-friendly key=value summary.
	FormatPrettyText BodyFormat = "pretty"
)

func encodeBody(format BodyFormat, payload Payload) ([]byte, string, error) {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(payload.Values)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	case FormatPrettyText:
		return []byte(prettyText(payload)), "text/plain; charset=utf-8", nil
	default:
		return []byte(encodeForm(payload)), "application/x-www-form-urlencoded", nil
	}
}

// encodeForm flattens the payload into urlencoded pairs in element insertion
// order. Sequences repeat the key with a [] suffix; mappings flatten with a
// dotted prefix.
func encodeForm(payload Payload) string {
	var b strings.Builder
	for _, key := range orderedKeys(payload) {
		flattenValue(&b, key, payload.Values[key])
	}
	return strings.TrimSuffix(b.String(), "&")
}

func flattenValue(b *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for _, sub := range sortedMapKeys(v) {
			flattenValue(b, key+"."+sub, v[sub])
		}
	case []string:
		for _, item := range v {
			writePair(b, key+"[]", item)
		}
	case []any:
		for _, item := range v {
			writePair(b, key+"[]", fmt.Sprint(item))
		}
	default:
		writePair(b, key, fmt.Sprint(v))
	}
}

func writePair(b *strings.Builder, key, value string) {
	b.WriteString(url.QueryEscape(key))
	b.WriteString("=")
	b.WriteString(url.QueryEscape(value))
	b.WriteString("&")
}

// prettyText writes one key=value line per entry in insertion order.
func prettyText(payload Payload) string {
	var b strings.Builder
	for _, key := range orderedKeys(payload) {
		fmt.Fprintf(&b, "%s=%v\n", key, payload.Values[key])
	}
	return b.String()
}

// orderedKeys returns payload.Keys filtered to present values, followed by
// any values the key list missed, sorted for determinism. Payloads built by
// a form always carry a complete key list; the fallback covers hand-built
// payloads.
func orderedKeys(payload Payload) []string {
	seen := make(map[string]struct{}, len(payload.Keys))
	out := make([]string, 0, len(payload.Values))
	for _, key := range payload.Keys {
		if _, dup := seen[key]; dup {
			continue
		}
		if _, ok := payload.Values[key]; !ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	var rest []string
	for key := range payload.Values {
		if _, ok := seen[key]; !ok {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
