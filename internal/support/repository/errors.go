package repository

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToInsert = errors.New("failed to insert record")
)
