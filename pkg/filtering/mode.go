package filtering

import (
	"fmt"
	"strings"
)

// MatchMode selects how a row's filter value is compared with the criteria.
type MatchMode string

const (
	// ModeExact keeps a row if its value is in the criteria set.
	ModeExact MatchMode = "exact"
	// ModeContains keeps a row if any criterion is a substring of its value.
	ModeContains MatchMode = "contains"
	// ModePrefix keeps a row if its value starts with any criterion.
	ModePrefix MatchMode = "prefix"
	// ModeSuffix keeps a row if its value ends with any criterion.
	ModeSuffix MatchMode = "suffix"
)

// modeAliases maps the accepted spellings, including the labels used by the
// Chinese desktop front end, to a MatchMode.
var modeAliases = map[string]MatchMode{
	"exact":    ModeExact,
	"equals":   ModeExact,
	"精确匹配":     ModeExact,
	"contains": ModeContains,
	"包含匹配":     ModeContains,
	"prefix":   ModePrefix,
	"前缀匹配":     ModePrefix,
	"suffix":   ModeSuffix,
	"后缀匹配":     ModeSuffix,
}

// ValidModes lists the canonical mode names.
var ValidModes = []string{string(ModeExact), string(ModeContains), string(ModePrefix), string(ModeSuffix)}

// ParseMatchMode converts a mode name or alias into a MatchMode.
//
// An empty string selects ModeExact.
func ParseMatchMode(s string) (MatchMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ModeExact, nil
	}
	if mode, ok := modeAliases[key]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("unknown match mode %q (valid: %s)", s, strings.Join(ValidModes, ", "))
}
