package completion

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// deprecatedPrefix marks command names left over from a removed
	// subsystem. They never receive completion functions.
	deprecatedPrefix = "uninstal"

	// toggleMarker is the boolean-flag notation "--[no-]xxx" that expands
	// into a positive and a negated form.
	toggleMarker = "[no-]"
)

// NormalizeOptions expands raw options into the canonical flag name to
// description mapping, in source order. Options with an empty name are
// dropped; a toggle flag yields both its positive and "no-"-prefixed form,
// sharing one description. Flag names are unique per command after this
// expansion; a collision in the input is a caller-data defect.
func NormalizeOptions(options []Option) *orderedmap.OrderedMap[string, string] {
	flags := orderedmap.New[string, string]()
	for _, opt := range options {
		if opt.Name == "" {
			continue
		}
		if strings.Contains(opt.Name, toggleMarker) {
			flags.Set(strings.Replace(opt.Name, toggleMarker, "", 1), opt.Description)
			flags.Set(strings.Replace(opt.Name, toggleMarker, "no-", 1), opt.Description)
			continue
		}
		flags.Set(opt.Name, opt.Description)
	}
	return flags
}

// IsEligible reports whether a command gets a completion function: its
// name must not carry the deprecated prefix, and it must expose at least
// one flag after normalization.
func IsEligible(meta Metadata, command string) bool {
	if strings.HasPrefix(command, deprecatedPrefix) {
		return false
	}
	return NormalizeOptions(meta.CommandOptions(command)).Len() > 0
}
