package persistence

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// normalizeIdentifier trims the input and enforces a lowercase snake_case
// identifier that is safe to embed in SQL text.
func normalizeIdentifier(kind, input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("%s name is required", kind)
	}

	if !identifierPattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid %s name %q: must match ^[a-z][a-z0-9_]*$", kind, trimmed)
	}

	return trimmed, nil
}

func normalizeIdentifiers(kind string, inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one %s is required", kind)
	}

	out := make([]string, 0, len(inputs))
	var errs []error
	for _, input := range inputs {
		name, err := normalizeIdentifier(kind, input)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, name)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
