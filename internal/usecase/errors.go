package usecase

import "errors"

var (
	// ErrInvalidReactionType is returned when a toggle names anything other
	// than the two recognized reaction sets.
	ErrInvalidReactionType = errors.New("invalid reaction type")

	// ErrForbidden is returned when the acting user is not allowed to modify
	// the target entity.
	ErrForbidden = errors.New("not allowed to modify this resource")

	// ErrNestedReply is returned when a reply is addressed to another reply;
	// comment threads are one level deep.
	ErrNestedReply = errors.New("replies cannot be nested")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
