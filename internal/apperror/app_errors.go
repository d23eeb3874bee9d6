package apperror

import "errors"

var (
	ErrColumnOutOfRange = errors.New("column is out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameFinished     = errors.New("game is already finished")
)
