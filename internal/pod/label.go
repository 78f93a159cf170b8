package pod

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var separatorRun = regexp.MustCompile(`[_\-]+`)

// FormatLabel turns a payload key into a display label:
// "delivery_notes" -> "Delivery notes", "driver-name" -> "Driver name".
// Only the first rune is upper-cased.
func FormatLabel(key string) string {
	cleaned := strings.TrimSpace(separatorRun.ReplaceAllString(key, " "))
	if cleaned == "" {
		return key
	}
	r, size := utf8.DecodeRuneInString(cleaned)
	return string(unicode.ToUpper(r)) + cleaned[size:]
}
