package pod

import "strings"

const (
	dataURIPrefix    = "data:"
	pngDataURIPrefix = "data:image/png;base64,"

	// minInlineImageLen keeps short plain-text values (names, ids, "yes")
	// from being mistaken for base64 images.
	minInlineImageLen = 100
)

// CoerceDataURI turns value into a data URI when it already is one or looks
// like a bare base64 image. It is a heuristic, not a format detector: a long
// base64-looking token that is not an image is wrapped anyway, and a short
// real image is rejected.
func CoerceDataURI(value string) (string, bool) {
	if strings.HasPrefix(value, dataURIPrefix) {
		return value, true
	}

	compact := strings.Join(strings.Fields(value), "")
	if compact == "" {
		return "", false
	}
	if len(compact) > minInlineImageLen && isBase64Alphabet(compact) {
		return pngDataURIPrefix + compact, true
	}
	return "", false
}

func isBase64Alphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '=':
		default:
			return false
		}
	}
	return true
}
