// Package validate holds the pure input-shape checks used by the services.
// Every function is deterministic and side-effect free; failures come back
// as human-readable reasons rather than errors so callers can collect them.
package validate

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	phoneRe    = regexp.MustCompile(`^(\+54|0)?[1-9]\d{9,10}$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`\d`)
	unsafeRe   = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

// allowedExtensions is the image allow-set. The decision is based on the
// filename suffix only; content is not sniffed.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// Email reports whether s has the local@domain.tld shape.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password checks length and character-class requirements. There is no upper
// length bound; bcrypt truncates at 72 bytes.
func Password(s string) (bool, string) {
	if len(s) < 8 {
		return false, "password must be at least 8 characters"
	}
	if !upperRe.MatchString(s) {
		return false, "password must contain at least one uppercase letter"
	}
	if !lowerRe.MatchString(s) {
		return false, "password must contain at least one lowercase letter"
	}
	if !digitRe.MatchString(s) {
		return false, "password must contain at least one digit"
	}
	return true, ""
}

// Username checks the 3-20 length window and the letter/digit/underscore
// character set.
func Username(s string) (bool, string) {
	if len(s) < 3 || len(s) > 20 {
		return false, "username must be between 3 and 20 characters"
	}
	if !usernameRe.MatchString(s) {
		return false, "username may only contain letters, digits and underscores"
	}
	return true, ""
}

// Phone validates an optional phone number. Empty is valid; otherwise spaces
// and hyphens are stripped and the remainder must match the national format
// with an optional country prefix.
func Phone(s string) bool {
	if s == "" {
		return true
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return phoneRe.MatchString(s)
}

// Product validates the product form fields. Precio is the raw form value:
// empty means "not provided". All failures are collected.
func Product(nombre, categoria, precio string) []string {
	var reasons []string

	if strings.TrimSpace(nombre) == "" {
		reasons = append(reasons, "product name is required")
	}
	if categoria == "" {
		reasons = append(reasons, "category is required")
	} else if !domain.ValidCategory(categoria) {
		reasons = append(reasons, "unknown category")
	}
	if precio != "" {
		v, err := strconv.ParseFloat(precio, 64)
		if err != nil {
			reasons = append(reasons, "price must be a valid number")
		} else if v < 0 {
			reasons = append(reasons, "price cannot be negative")
		}
	}

	return reasons
}

// AllowedFile reports whether the filename carries an allowed image
// extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}

// SanitizeFilename strips path components and replaces any character outside
// [a-zA-Z0-9_.-] with an underscore.
func SanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	return unsafeRe.ReplaceAllString(base, "_")
}
