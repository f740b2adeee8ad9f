package mailform

import (
	"regexp"
	"strings"
)

// displayNameRe matches the `Name <addr>` convention, tolerating an
// optionally quoted name and surrounding whitespace.
var displayNameRe = regexp.MustCompile(`^\s*"?(.*?)"?\s*<\s*(.+?)\s*>\s*$`)

// ParseAddress turns a single textual address into an Address.
// A string matching the display-name pattern `Name <addr>` is split into
// name and address; anything else becomes a bare address as-is. No RFC 5322
// validation happens here — garbage in, garbage out, by contract: deep
// validation is the transport's job.
func ParseAddress(s string) Address {
	if m := displayNameRe.FindStringSubmatch(s); m != nil {
		return Address{
			Email: strings.TrimSpace(m[2]),
			Name:  strings.TrimSpace(m[1]),
		}
	}
	return Address{Email: s}
}

// ParseAddressList splits a comma-separated address string and parses each
// segment individually. Segments are trimmed and empty segments dropped.
// Order is preserved and duplicates are kept.
func ParseAddressList(s string) []Address {
	parts := strings.Split(s, ",")
	out := make([]Address, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, ParseAddress(p))
	}
	return out
}

// Addr is a convenience constructor for a bare address.
func Addr(email string) Address {
	return Address{Email: email}
}

// Named is a convenience constructor for an address with a display name.
func Named(name, email string) Address {
	return Address{Email: email, Name: name}
}
