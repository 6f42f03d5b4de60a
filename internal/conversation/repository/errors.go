package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
