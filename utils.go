/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"strings"
)

// splitCSV splits a comma separated environment value into trimmed entries,
// dropping empties so a trailing comma does not produce a phantom team.
func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
