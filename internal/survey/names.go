package survey

import (
	"regexp"
	"strings"
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// NameInitial reduces a display name to "First L.". Single-token names pass
// through unchanged. When the name is empty, a login falls back to a bare
// initial, and with neither present the result is "Anonymous".
func NameInitial(name, login string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		login = strings.TrimSpace(login)
		if login == "" {
			return "Anonymous"
		}
		return firstLetter(login) + "."
	}

	parts := strings.Fields(name)
	if len(parts) == 1 {
		return parts[0]
	}

	return parts[0] + " " + firstLetter(parts[len(parts)-1]) + "."
}

// Initial returns the uppercased first letter of a name, or "" for an empty
// name.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return firstLetter(name)
}

func firstLetter(s string) string {
	return strings.ToUpper(string([]rune(s)[0]))
}

// StripMarkup removes angle-bracket content from free-text input before it
// is stored.
func StripMarkup(input string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(input, ""))
}
