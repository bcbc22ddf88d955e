package cmd

import "errors"

var (
	ErrEmptyQuery  = errors.New("no notes or midi keys given")
	ErrInvalidRoot = errors.New("not a note name")
	ErrInvalidKey  = errors.New("no such key on the circle")

	ErrUnknownSymbol = errors.New("no such chord symbol")
)
