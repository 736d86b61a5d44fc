package storage

import "errors"

var (
	ErrAccountExists    = errors.New("account already exists")
	ErrAccountNotFound  = errors.New("account not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrContactNotFound  = errors.New("contact not found")
)
