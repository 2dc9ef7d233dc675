package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrSessionNotFound = errors.New("session not found or expired")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidRole = errors.New("invalid role")
