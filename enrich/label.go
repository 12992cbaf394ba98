package enrich

import "strings"

// labelOverrides maps keys whose labels do not follow the structural rules.
// An entry fully replaces the generated label; it never merges with it.
var labelOverrides = map[string]string{
	"font-family":                "Font Family",
	"font-family-bold":           "Font Family (Bold)",
	"font-family-italic":         "Font Family (Italic)",
	"font-family-bold-italic":    "Font Family (Bold Italic)",
	"font-style":                 "Font Style",
	"font-style-bold":            "Font Style (Bold)",
	"font-style-italic":          "Font Style (Italic)",
	"font-style-bold-italic":     "Font Style (Bold Italic)",
	"font-synthetic-style":       "Synthetic Font Styles",
	"font-feature":               "Font Features",
	"font-size":                  "Font Size",
	"font-variation":             "Font Variations",
	"font-variation-bold":        "Font Variations (Bold)",
	"font-variation-italic":      "Font Variations (Italic)",
	"font-variation-bold-italic": "Font Variations (Bold Italic)",
	"font-codepoint-map":         "Codepoint to Font Mapping",
	"font-thicken":               "Thicken Font",
	"font-thicken-strength":      "Thicken Strength",
	"font-shaping-break":         "Font Shaping Break Points",
	"freetype-load-flags":        "FreeType Load Flags",
	"window-title-font-family":   "Window Title Font",

	"background":                "Background Color",
	"foreground":                "Foreground Color",
	"selection-foreground":      "Selection Foreground",
	"selection-background":      "Selection Background",
	"palette":                   "Color Palette",
	"minimum-contrast":          "Minimum Contrast Ratio",
	"cursor-color":              "Cursor Color",
	"cursor-opacity":            "Cursor Opacity",
	"cursor-style":              "Cursor Style",
	"cursor-style-blink":        "Cursor Blink",
	"cursor-text":               "Cursor Text Color",
	"cursor-click-to-move":      "Click to Move Cursor",
	"alpha-blending":            "Alpha Blending Mode",
	"background-opacity":        "Background Opacity",
	"background-opacity-cells":  "Apply Opacity to Cells",
	"background-blur":           "Background Blur",
	"background-image":          "Background Image",
	"background-image-opacity":  "Background Image Opacity",
	"background-image-position": "Background Image Position",
	"background-image-fit":      "Background Image Fit",
	"background-image-repeat":   "Repeat Background Image",
	"unfocused-split-opacity":   "Unfocused Split Opacity",
	"unfocused-split-fill":      "Unfocused Split Fill Color",
	"split-divider-color":       "Split Divider Color",

	"selection-clear-on-typing": "Clear Selection on Typing",
	"selection-clear-on-copy":   "Clear Selection on Copy",
	"mouse-hide-while-typing":   "Hide Mouse While Typing",
	"scroll-to-bottom":          "Scroll to Bottom",
	"mouse-shift-capture":       "Mouse Shift Capture",
	"mouse-scroll-multiplier":   "Mouse Scroll Multiplier",
	"link-url":                  "Enable URL Links",
	"link-previews":             "Show Link Previews",
	"theme":                     "Theme",

	"window-padding-x":                 "Horizontal Padding",
	"window-padding-y":                 "Vertical Padding",
	"window-padding-balance":           "Balance Padding",
	"window-padding-color":             "Padding Color",
	"window-vsync":                     "Vertical Sync",
	"window-inherit-working-directory": "Inherit Working Directory",
	"window-inherit-font-size":         "Inherit Font Size",
	"window-decoration":                "Window Decorations",
	"window-subtitle":                  "Window Subtitle",
	"window-theme":                     "Window Theme",
	"window-colorspace":                "Window Color Space",
	"window-height":                    "Window Height",
	"window-width":                     "Window Width",
	"window-position-x":                "Window X Position",
	"window-position-y":                "Window Y Position",
	"maximize":                         "Start Maximized",
	"fullscreen":                       "Start Fullscreen",
	"title":                            "Window Title",
	"class":                            "Application Class",
	"x11-instance-name":                "X11 Instance Name",

	"working-directory":             "Working Directory",
	"keybind":                       "Keybinding",
	"command":                       "Shell Command",
	"initial-command":               "Initial Command",
	"env":                           "Environment Variables",
	"input":                         "Startup Input",
	"wait-after-command":            "Wait After Command",
	"abnormal-command-exit-runtime": "Abnormal Exit Threshold",
	"scrollback-limit":              "Scrollback Limit",
	"grapheme-width-method":         "Grapheme Width Method",
}

// adjustPrefix marks the key-name family labeled "Adjust <Rest>".
const adjustPrefix = "adjust-"

// Label generates the human-readable label for a configuration key. The
// exact-key override table wins; otherwise the adjust- family rule applies;
// otherwise hyphens become spaces and each word is title-cased. The result
// is never empty for a non-empty key.
func Label(key string) string {
	if label, ok := labelOverrides[key]; ok {
		return label
	}

	if rest, ok := strings.CutPrefix(key, adjustPrefix); ok {
		return "Adjust " + titleWords(rest)
	}

	return titleWords(key)
}

// titleWords replaces hyphens with spaces and upper-cases the first letter of
// each word. Falls back to the input when no words remain, so the label stays
// non-empty for hyphen-only keys.
func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	if len(words) == 0 {
		return s
	}

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
