package domain

import "github.com/google/uuid"

// UnknownUserName is shown when a referenced user no longer exists.
const UnknownUserName = "Unknown user"

// User is the slice of the user record the inbox needs.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// DisplayName returns the name to show in the feed, falling back to the
// email when the profile has no name set.
func (u *User) DisplayName() string {
	if u == nil {
		return UnknownUserName
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return UnknownUserName
}
