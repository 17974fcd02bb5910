package activities

import (
	"regexp"
	"unicode/utf8"
)

const (
	minNameLength = 1
	maxNameLength = 100
)

// letters, digits, underscore, whitespace, hyphen, apostrophe
var activityNamePattern = regexp.MustCompile(`^[A-Za-z0-9_\s\-']+$`)

// ValidateActivityName rejects path values that could not be a real activity name.
func ValidateActivityName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < minNameLength || n > maxNameLength {
		return &NameError{Reason: "Invalid activity name length"}
	}
	if !activityNamePattern.MatchString(name) {
		return &NameError{Reason: "Activity name contains invalid characters"}
	}
	return nil
}

// ResolveEmail applies the signup precedence: the JSON body wins, the legacy
// query parameter is used only when the body carries no email.
func ResolveEmail(bodyEmail, queryEmail string) string {
	if bodyEmail != "" {
		return bodyEmail
	}
	return queryEmail
}
