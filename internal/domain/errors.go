package domain

import "errors"

var (
	ErrInvalidClassification = errors.New("invalid classification")
)
