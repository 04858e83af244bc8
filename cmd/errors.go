package cmd

import (
	"strings"
)

// isUsageError recognizes cobra's argument and flag validation failures
func isUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"required flag",
		"accepts ",
		"requires at least",
		"invalid argument",
		"flag needs an argument",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
