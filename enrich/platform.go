package enrich

import (
	"strings"

	"github.com/confschema/confschema/schema"
)

// exclusivePhrases maps comment phrases that pin a key to exactly one
// platform. GTK phrases map to linux because GTK builds only ship there.
var exclusivePhrases = []struct {
	phrase   string
	platform schema.Platform
}{
	{"only supported on macos", schema.PlatformMacOS},
	{"macos only", schema.PlatformMacOS},
	{"only supported on linux", schema.PlatformLinux},
	{"linux only", schema.PlatformLinux},
	{"only affects gtk", schema.PlatformLinux},
	{"gtk only", schema.PlatformLinux},
}

// keyPrefixPlatforms maps key-name prefixes to their platform. Checked in
// order; at most one prefix matches a given key.
var keyPrefixPlatforms = []struct {
	prefix   string
	platform schema.Platform
}{
	{"macos-", schema.PlatformMacOS},
	{"gtk-", schema.PlatformLinux},
	{"linux-", schema.PlatformLinux},
	{"x11-", schema.PlatformLinux},
}

// PlatformsFromComment scans a documentation comment (case-insensitively)
// for platform restrictions. An exclusivity phrase short-circuits to exactly
// that platform; otherwise bare mentions of recognized platform names
// accumulate, in macos/linux/windows order. Returns nil when the comment
// names no platform.
func PlatformsFromComment(comment string) []schema.Platform {
	lower := strings.ToLower(comment)

	for _, e := range exclusivePhrases {
		if strings.Contains(lower, e.phrase) {
			return []schema.Platform{e.platform}
		}
	}

	var platforms []schema.Platform

	if strings.Contains(lower, "macos") {
		platforms = append(platforms, schema.PlatformMacOS)
	}

	if strings.Contains(lower, "linux") || strings.Contains(lower, "gtk") {
		platforms = append(platforms, schema.PlatformLinux)
	}

	if strings.Contains(lower, "windows") {
		platforms = append(platforms, schema.PlatformWindows)
	}

	return platforms
}

// PlatformsFromKey infers a platform restriction from the key name's prefix.
// Returns nil when no prefix applies.
func PlatformsFromKey(key string) []schema.Platform {
	for _, e := range keyPrefixPlatforms {
		if strings.HasPrefix(key, e.prefix) {
			return []schema.Platform{e.platform}
		}
	}

	return nil
}
