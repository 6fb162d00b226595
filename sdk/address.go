package sdk

import "strings"

type AddressType string

const (
	AddressTypeNamed    AddressType = "named"
	AddressTypeImplicit AddressType = "implicit"
	AddressTypeSystem   AddressType = "system"
	AddressTypeUnknown  AddressType = "unknown"
)

// Address is an opaque account identifier as the host passes it around.
type Address string

// String returns the literal representation (like token.near) of the address.
// Example payload: sdk.Address("token.near").String()
func (a Address) String() string {
	return string(a)
}

// Type categorizes the account id: named (dot separated), implicit (64 hex chars)
// or system (the reserved host account).
// Example payload: sdk.Address("alice.near").Type()
func (a Address) Type() AddressType {
	s := a.String()
	if s == "system" {
		return AddressTypeSystem
	}
	if len(s) == 64 && isHexLower(s) {
		return AddressTypeImplicit
	}
	if isValidAccountID(s) {
		return AddressTypeNamed
	}
	return AddressTypeUnknown
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
// Example payload: sdk.Address("x").IsValid()
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}

// isValidAccountID enforces the account id grammar: 2-64 chars of lowercase
// alphanumeric segments joined by single '.', '-' or '_' separators.
func isValidAccountID(s string) bool {
	if len(s) < 2 || len(s) > 64 {
		return false
	}
	lastSep := true // a leading separator is invalid
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			lastSep = false
		case c == '.' || c == '-' || c == '_':
			if lastSep {
				return false
			}
			lastSep = true
		default:
			return false
		}
	}
	return !lastSep
}

func isHexLower(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f')
	}) == -1
}
