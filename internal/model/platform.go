// Package model defines the core domain types for rutaapp.
package model

import (
	"regexp"
	"strings"
)

// FallbackPlatformColor is used when a trip references a platform that no
// longer exists in the registry. Lookups never fail; they degrade to this.
const FallbackPlatformColor = "#666"

// Platform represents a payment platform the driver works with.
type Platform struct {
	ID    string
	Name  string
	Color string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// PlatformID derives a slug-form id from a display name: lowercased, with
// whitespace runs collapsed to underscores.
func PlatformID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// DefaultPlatforms returns a fresh copy of the seed platforms. Callers get
// their own slice; the seed is never shared by reference.
func DefaultPlatforms() []Platform {
	return []Platform{
		{ID: "uber", Name: "UBER", Color: "#000000"},
		{ID: "didi", Name: "DIDI", Color: "#FF6B35"},
		{ID: "coop", Name: "COOPEBOMBAS", Color: "#1976D2"},
		{ID: "idriver", Name: "IDRIVER", Color: "#00BF63"},
		{ID: "mano", Name: "MANO", Color: "#7C3AED"},
	}
}
