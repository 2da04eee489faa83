package common

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUsername checks the shared "@handle" shape used by both user
// accounts and discoverable chats.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("%w: username must be between 3 and 50 characters", ErrInvalidArgument)
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("%w: username can only contain letters, numbers, and underscores", ErrInvalidArgument)
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters long", ErrInvalidArgument)
	}

	if len(password) > 100 {
		return fmt.Errorf("%w: password is too long", ErrInvalidArgument)
	}

	return nil
}

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: display name required", ErrInvalidArgument)
	}
	if len(name) > 100 {
		return fmt.Errorf("%w: display name is too long", ErrInvalidArgument)
	}
	return nil
}
