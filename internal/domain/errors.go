package domain

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrEmptyFile         = errors.New("file is empty")
	ErrMissingColumn     = errors.New("missing required column")
	ErrInvalidCSVFormat  = errors.New("invalid CSV format")
	ErrFileTooLarge      = errors.New("file too large")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidPageParams = errors.New("invalid page parameters")
)
