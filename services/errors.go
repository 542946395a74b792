package services

import "errors"

// Sentinel errors returned by the core workflows so callers can tell
// "already done" apart from "wrong id".
var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("request is not pending")
	ErrDuplicateRequest  = errors.New("an active request already exists for this pair")
)
