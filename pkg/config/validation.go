// pkg/config/validation.go
package config

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxShipNameLen bounds ship names in logs and CSV rows.
const MaxShipNameLen = 32

var (
	validShipNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)
	validColor         = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// ValidateShipName validates and trims a ship name.
func ValidateShipName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("ship name cannot be empty")
	}

	if len(name) > MaxShipNameLen {
		return "", fmt.Errorf("ship name too long: %d characters (max %d)", len(name), MaxShipNameLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("ship name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("ship name cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("ship name contains control characters")
		}
	}

	if !validShipNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("ship name contains invalid characters (only alphanumeric, spaces, hyphens, underscores and dots allowed)")
	}

	return trimmed, nil
}

// ValidateColor accepts #RRGGBB hex colors.
func ValidateColor(color string) error {
	if !validColor.MatchString(color) {
		return fmt.Errorf("color %q is not a #RRGGBB hex value", color)
	}
	return nil
}
