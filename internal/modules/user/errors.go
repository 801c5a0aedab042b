package user

import "errors"

var (
	ErrEmailTaken = errors.New("email already taken")
	ErrNameTaken  = errors.New("name already taken")
)
