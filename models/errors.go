package models

import "errors"

var (
	ErrAlreadyExists = errors.New("record already exists")
	ErrStoreNotFound = errors.New("database file not found")
)
