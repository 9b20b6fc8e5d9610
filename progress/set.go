// Package progress implements the module completion, unlock and merge rules
// for the course player. Everything here is pure; persistence stays in the
// controllers.
package progress

import "encoding/json"

// DecodeIDs decodes a stored JSON array of module IDs. Unknown or empty input
// decodes to an empty set; duplicates are dropped, first occurrence wins.
func DecodeIDs(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}
	}
	return Normalize(ids)
}

// EncodeIDs encodes a module-ID set for storage. Input is normalized first so
// duplicates never reach the row.
func EncodeIDs(ids []string) string {
	raw, err := json.Marshal(Normalize(ids))
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// Normalize removes duplicates and empty entries, preserving first-seen order.
func Normalize(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Union returns a ∪ b, keeping a's order and appending b's new members.
func Union(a, b []string) []string {
	out := Normalize(a)
	seen := make(map[string]bool, len(out))
	for _, id := range out {
		seen[id] = true
	}
	for _, id := range b {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Contains reports whether id is a member of the set.
func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// equalAsSets reports whether two slices hold the same members, ignoring order.
func equalAsSets(a, b []string) bool {
	a, b = Normalize(a), Normalize(b)
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}
