package utils

import "encoding/json"

// EncodeStringList serializes a string list for storage in a plain string
// field. A nil slice encodes as "[]" so the round trip never produces null.
func EncodeStringList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeStringList is the inverse of EncodeStringList. Empty input, the
// literal "null" and malformed JSON all decode to an empty list; this
// function never fails.
func DecodeStringList(raw string) []string {
	if raw == "" || raw == "null" || raw == `""` {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
