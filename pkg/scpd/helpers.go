package scpd

import "strings"

// ArgTypePrefix marks internal-only variable names in SCPD documents. It is
// a naming convention, not part of the logical identifier, so every consumer
// facing name is presented with the prefix removed.
const ArgTypePrefix = "A_ARG_TYPE_"

// StripArgTypePrefix removes every leading ArgTypePrefix occurrence from a
// name. Stripping is idempotent: strip(strip(s)) == strip(s).
func StripArgTypePrefix(name string) string {
	for strings.HasPrefix(name, ArgTypePrefix) {
		name = strings.TrimPrefix(name, ArgTypePrefix)
	}
	return name
}

// NormalizeWhitespace collapses whitespace in a string (like xs:token).
// Element text in SCPD documents is frequently padded with indentation
// whitespace by device firmware.
func NormalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
