package params

import (
	"go/token"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// generated method names a field must not shadow once exported.
var reservedNames = map[string]bool{
	"Schema":          true,
	"Args":            true,
	"WithDefaults":    true,
	"Combine":         true,
	"CombineDefaults": true,
}

// ExportName returns name with its first letter upper-cased, which is how a
// schema field name becomes a Go struct field name ("x" -> "X",
// "retryCount" -> "RetryCount"). Digraphs map to their upper-case form, not
// title case, since only category Lu starts an exported identifier.
func ExportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	// a Caser keeps state between calls so one is built per use
	head := cases.Upper(language.Und).String(name[:size])
	return head + name[size:]
}

// IsReserved reports whether a field called name would collide with Go syntax
// or with an identifier the generator emits.
func IsReserved(name string) bool {
	if token.IsKeyword(name) || strings.HasPrefix(name, "_") {
		return true
	}
	return reservedNames[ExportName(name)]
}
