package payload

import "strings"

// KeyMatcher reports whether a mapping key is one of the keys being searched for.
type KeyMatcher func(key string) bool

// NormalizeKey lowercases key and drops everything except a-z and 0-9, so
// "Signature_URL", "signatureUrl" and "SIGNATURE-URL" compare equal.
func NormalizeKey(key string) string {
	lower := strings.ToLower(key)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExactKeys matches keys byte-for-byte.
func ExactKeys(keys ...string) KeyMatcher {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return func(key string) bool {
		_, ok := set[key]
		return ok
	}
}

// NormalizedKeys matches keys after NormalizeKey is applied to both sides.
func NormalizedKeys(keys ...string) KeyMatcher {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[NormalizeKey(k)] = struct{}{}
	}
	return func(key string) bool {
		_, ok := set[NormalizeKey(key)]
		return ok
	}
}

// FindFirst walks v depth-first, pre-order, left to right and returns the
// first trimmed non-empty string stored under a matching key. A mapping entry
// is checked before its own subtree, and its subtree is searched before the
// entries that follow it.
func FindFirst(v Value, match KeyMatcher) (string, bool) {
	switch node := v.(type) {
	case Mapping:
		for _, e := range node {
			if match(e.Key) {
				if s, ok := e.Value.(String); ok {
					if trimmed := strings.TrimSpace(string(s)); trimmed != "" {
						return trimmed, true
					}
				}
			}
			if found, ok := FindFirst(e.Value, match); ok {
				return found, true
			}
		}
	case Sequence:
		for _, item := range node {
			if found, ok := FindFirst(item, match); ok {
				return found, true
			}
		}
	}
	return "", false
}
