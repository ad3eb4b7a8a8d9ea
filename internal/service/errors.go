package service

import (
	"errors"
	"strings"
)

var (
	ErrInternal        = errors.New("internal server error")
	ErrUnauthenticated = errors.New("user is not authenticated")
	ErrNoUserRecord    = errors.New("user record not found")
	ErrBlogNotFound    = errors.New("blog not found or you do not have permission to update it")
	ErrBlogTitleTaken  = errors.New("a blog with this title already exists")
)

// ValidationError carries every violated field rule for a request, so a
// client can fix the whole payload in one round trip.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
