package internal

import (
	"errors"
	"fmt"
)

// Validation failures reported back to the caller. None of these mutate state.
var (
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrInvalidCurrentPassword = errors.New("current password does not match")
	ErrEmptyNewPassword       = errors.New("new password is empty")
	ErrPasswordMismatch       = errors.New("password confirmation does not match")
	ErrEmptyName              = errors.New("instruction set name is empty")
	ErrEmptyValue             = errors.New("instruction field value is empty")
	ErrSetNotFound            = errors.New("instruction set not found")
	ErrUnknownField           = errors.New("unknown instruction field")
	ErrNotLoggedIn            = errors.New("not logged in")
)

// StorageError represents errors accessing the backing config file
type StorageError struct {
	Path string
	Op   string // "read", "write", "delete"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing a config document
type ParseError struct {
	Source string // "file", "import"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s]: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// GenerationError represents errors from the text-generation service
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error [%s]: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ArchiveError represents errors accessing the generation archive
type ArchiveError struct {
	Op  string // "open", "append", "list"
	Err error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive error: %s: %v", e.Op, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}
