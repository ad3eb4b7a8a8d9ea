package handler

import "errors"

var (
	errNotAuthorized           = errors.New("user is not authorized")
	errInvalidUserID           = errors.New("invalid user ID in token")
	errLimitAndOffsetMustBeInt = errors.New("limit and offset must be int")
)
