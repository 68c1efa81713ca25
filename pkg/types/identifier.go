package types

import "unicode"

// MaxIdentifierLen is the longest tool name accepted by model providers
const MaxIdentifierLen = 64

// IsIdentifier returns true if the string starts with a letter or underscore,
// is no longer than MaxIdentifierLen and contains only letters, digits,
// underscores and hyphens
func IsIdentifier(s string) bool {
	if s == "" || len(s) > MaxIdentifierLen {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), r == '_':
			continue
		case i > 0 && (unicode.IsDigit(r) || r == '-'):
			continue
		default:
			return false
		}
	}
	return true
}
