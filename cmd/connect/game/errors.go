package game

import (
	"errors"
	"fmt"
)

// Set of errors the game can return. All of them are recoverable: the game
// is left unchanged and the caller can try again.
var (
	ErrInvalidColumn     = errors.New("invalid column")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrBusy              = errors.New("notice is being displayed")
)

// ColumnError is returned when a column can't take a piece.
type ColumnError struct {
	Column int
	Full   bool
}

// Error implements the error interface.
func (ce *ColumnError) Error() string {
	if ce.Full {
		return fmt.Sprintf("column %d is full", ce.Column)
	}

	return fmt.Sprintf("column %d is out of range [0, %d)", ce.Column, Cols)
}

// Is allows the error to match ErrInvalidColumn.
func (ce *ColumnError) Is(target error) bool {
	return target == ErrInvalidColumn
}
