package model

import "github.com/google/uuid"

// CachedUser is the local copy of a user record owned by the identity
// service. It is created on first sight of a valid token and kept fresh
// by the user-info-updated queue.
type CachedUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
}

// Caller is the resolved identity an operation runs as: the cached user
// record plus the active-organization context carried by the access token.
// A nil *Caller means the request is unauthenticated.
type Caller struct {
	User             CachedUser
	OrganizationID   *string
	OrganizationName *string
}
