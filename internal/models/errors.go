package models

import (
	"errors"
)

var (
	ErrGeneral  = errors.New("an error occurred on the server during your request")
	ErrNotFound = errors.New("there is no cash card matching your query")
)
