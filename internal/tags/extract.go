package tags

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/tagindex/internal/config"
)

// Extract splits a raw tag field into trimmed tag tokens, preserving order
// and duplicates. An absent or empty field yields no tokens, and tokens
// that are empty after trimming are dropped.
//
// Strings are split on sep. YAML sequences ([]string, []any) are taken
// element by element, each element trimmed but not split further.
func Extract(raw any, sep string) []string {
	if sep == "" {
		sep = config.DefaultTagSeparator
	}

	switch val := raw.(type) {
	case nil:
		return []string{}
	case string:
		return trimTokens(strings.Split(val, sep))
	case []string:
		return trimTokens(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			parts = append(parts, fmt.Sprint(item))
		}
		return trimTokens(parts)
	default:
		return trimTokens(strings.Split(fmt.Sprint(val), sep))
	}
}

func trimTokens(parts []string) []string {
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if tok := strings.TrimSpace(part); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
