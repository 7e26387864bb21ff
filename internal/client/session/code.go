package session

import (
	"strings"

	"filedrop/internal/common"
)

// NormalizeCode uppercases raw, silently drops every character outside
// [A-Z0-9], and truncates the result to the maximum code length.
func NormalizeCode(raw string) string {
	var b strings.Builder
	b.Grow(common.CodeMaxLen)

	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == common.CodeMaxLen {
				break
			}
		}
	}

	return b.String()
}
