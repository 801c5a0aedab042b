package favorite

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrPlanetNotFound    = errors.New("planet not found")
	ErrFavoriteNotFound  = errors.New("favorite not found")
)
