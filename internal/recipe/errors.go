package recipe

import "errors"

var (
	ErrInvalidRecipe = errors.New("invalid recipe")
	ErrUnknownItem   = errors.New("recipe references unknown item")
)
