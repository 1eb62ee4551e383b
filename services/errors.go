package services

import (
	"errors"
	"fmt"
)

// Configuration errors: a required credential is absent. These fail the
// request immediately; no downstream calls are attempted.
var (
	ErrNewsKeyMissing = errors.New("NEWS_API_KEY is not configured")
	ErrLLMKeyMissing  = errors.New("LLM API key is not configured")
)

// Auth / bookmark errors.
var (
	ErrEmailTaken    = errors.New("user already exists with this email")
	ErrUserNotFound  = errors.New("no account found with this email")
	ErrSavedNotFound = errors.New("saved article not found")
)

// RetrievalError reports a failed news-provider call. Timeout distinguishes
// an abandoned call from a provider-side failure; prompt selection treats
// both the same, logging does not.
type RetrievalError struct {
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("news retrieval timed out: %v", e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("news provider returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("news retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// GenerationError reports a failed text-generation call.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("text generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
