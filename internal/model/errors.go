package model

import "errors"

// Common errors used across the application
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrNicknameTaken  = errors.New("nickname is already taken")
	ErrPhoneInUse     = errors.New("phone number already used with a different nickname")
)
