package mailform

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// base64Re matches the canonical base64 alphabet: groups of four characters
// with optional = / == padding on the final group.
var base64Re = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{4}|[A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{2}==)$`)

// decodeIfBase64 reverses base64 encoding applied to form control values.
// Values that do not look like base64 are returned unchanged.
//
// The shape test is a heuristic: short alphanumeric plaintext whose length
// is a multiple of four (e.g. "TestUser") also matches and gets decoded
// into unintended bytes. Existing callers depend on this behavior, so it is
// kept as-is rather than tightened.
func decodeIfBase64(value string) string {
	stripped := strings.NewReplacer("\r", "", "\n", "").Replace(value)
	if !base64Re.MatchString(stripped) {
		return value
	}
	decoded, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		return value
	}
	return string(decoded)
}
