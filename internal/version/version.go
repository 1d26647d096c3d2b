// Package version exposes the release version shared by the box and tf binaries.
package version

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed VERSION
var versionContent string

// Get returns the release version without surrounding whitespace.
func Get() string {
	return strings.TrimSpace(versionContent)
}

// Template returns a cobra version template naming the tool.
func Template(tool string) string {
	return fmt.Sprintf("%s version {{.Version}}\n", tool)
}
