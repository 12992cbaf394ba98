package schema

// ValueType classifies how a configuration key's value is edited and
// validated. The set is closed; the verification suite rejects anything else.
type ValueType string

// All recognized value types.
const (
	TypeText           ValueType = "text"
	TypeNumber         ValueType = "number"
	TypeBoolean        ValueType = "boolean"
	TypeEnum           ValueType = "enum"
	TypeOpacity        ValueType = "opacity"
	TypeFilepath       ValueType = "filepath"
	TypeColor          ValueType = "color"
	TypeKeybinding     ValueType = "keybinding"
	TypeCommand        ValueType = "command"
	TypeAdjustment     ValueType = "adjustment"
	TypePadding        ValueType = "padding"
	TypeFontStyle      ValueType = "font-style"
	TypeRepeatableText ValueType = "repeatable-text"
	TypeSpecialNumber  ValueType = "special-number"
	TypeFontFamily     ValueType = "font-family"
)

// ValueTypes returns all recognized value types in declaration order.
func ValueTypes() []ValueType {
	return []ValueType{
		TypeText,
		TypeNumber,
		TypeBoolean,
		TypeEnum,
		TypeOpacity,
		TypeFilepath,
		TypeColor,
		TypeKeybinding,
		TypeCommand,
		TypeAdjustment,
		TypePadding,
		TypeFontStyle,
		TypeRepeatableText,
		TypeSpecialNumber,
		TypeFontFamily,
	}
}

// Valid reports whether t is a member of the closed value-type set.
func (t ValueType) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeBoolean, TypeEnum, TypeOpacity,
		TypeFilepath, TypeColor, TypeKeybinding, TypeCommand,
		TypeAdjustment, TypePadding, TypeFontStyle, TypeRepeatableText,
		TypeSpecialNumber, TypeFontFamily:
		return true
	}

	return false
}

// InherentlyRepeatable reports whether keys of this type always model their
// value as an ordered sequence, regardless of how many assignments the
// documentation source contains.
func (t ValueType) InherentlyRepeatable() bool {
	return t == TypeRepeatableText || t == TypeKeybinding
}

// Platform identifies an operating system a key may be restricted to.
type Platform string

// All recognized platforms.
const (
	PlatformMacOS   Platform = "macos"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
)

// Platforms returns all recognized platforms in canonical order.
func Platforms() []Platform {
	return []Platform{PlatformMacOS, PlatformLinux, PlatformWindows}
}

// Valid reports whether p is one of macos, linux, or windows.
func (p Platform) Valid() bool {
	return p == PlatformMacOS || p == PlatformLinux || p == PlatformWindows
}
