package stringsx

import (
	"strings"
	"unicode"
)

// IsBlank reports whether s is empty or consists of white space only.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
