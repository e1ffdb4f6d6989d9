package game

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of the provided text, leaving the
// rest untouched. Mob names are stored in lower case ("a rat") and only
// promoted when they open a sentence.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatExits renders a direction list like "[n, e]" in a deterministic order.
func FormatExits(exits map[Direction]RoomID) string {
	if len(exits) == 0 {
		return "[]"
	}
	dirs := make([]string, 0, len(exits))
	for dir := range exits {
		dirs = append(dirs, dir.Short())
	}
	sort.Strings(dirs)
	return "[" + strings.Join(dirs, ", ") + "]"
}
