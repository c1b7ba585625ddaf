package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// GitHub logins are alphanumeric with single inner hyphens, at most 39 chars.
var orgPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)

// ParseOrgName trims input and checks it is a valid organization login. The
// result is safe to use in URL paths and cache file names.
func ParseOrgName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if !orgPattern.MatchString(name) {
		return "", fmt.Errorf("invalid organization name: %q", input)
	}
	return name, nil
}

func ParseOrgNames(inputs []string) ([]string, error) {
	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		name, err := ParseOrgName(input)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
