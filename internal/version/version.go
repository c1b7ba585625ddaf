package version

import (
	_ "embed"
	"strings"
)

// Value is the semantic version read from the VERSION file.
//
//go:embed VERSION
var raw string

var Value = strings.TrimSpace(raw)

// UserAgent is sent with every API request.
func UserAgent() string {
	return "ezorg/" + Value
}
