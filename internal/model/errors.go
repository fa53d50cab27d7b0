package model

import "errors"

var (
	ErrMachineNotFound = errors.New("machine not found")
	ErrSpecNotFound    = errors.New("machine spec not found")
	ErrInvalidSpec     = errors.New("invalid machine spec")
	ErrInvalidPriors   = errors.New("invalid priors")
	ErrInvalidQuery    = errors.New("invalid query")
)
