package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("sender is not authorized")
	ErrFeatureDisabled     = errors.New("command is disabled")
	ErrInvalidPath         = errors.New("invalid config path")
	ErrInvalidDocument     = errors.New("config document is invalid")
	ErrValidationRejected  = errors.New("config rejected by validation")
	ErrConfigValueNotFound = errors.New("config value not found")
	ErrRestartFailed       = errors.New("restart failed")
)

// FeatureDisabledError is returned for a command whose commands.<Command>
// switch is not true. Its text is the reply shown to the operator.
type FeatureDisabledError struct {
	Command string
}

func (e *FeatureDisabledError) Error() string {
	return fmt.Sprintf("/%s is disabled. Set commands.%s=true to enable.", e.Command, e.Command)
}

func (e *FeatureDisabledError) Unwrap() error {
	return ErrFeatureDisabled
}

// PathError describes why a raw config path could not be parsed.
type PathError struct {
	Raw    string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("Invalid path %q: %s. Use dot notation (e.g. foo.bar[0]).", e.Raw, e.Reason)
}

func (e *PathError) Unwrap() error {
	return ErrInvalidPath
}

// ValidationError carries the first issue of a rejected document. Issues
// holds the full list reported by the validator.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrValidationRejected.Error()
	}
	first := e.Issues[0]
	return fmt.Sprintf("%s: %s: %s", ErrValidationRejected, first.Path, first.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationRejected
}

func (e *ValidationError) First() ValidationIssue {
	if len(e.Issues) == 0 {
		return ValidationIssue{}
	}
	return e.Issues[0]
}
