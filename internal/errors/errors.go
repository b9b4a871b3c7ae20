package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeMalformedRecord ErrorType = "MALFORMED_RECORD"
	ErrTypeMissingIdentity ErrorType = "MISSING_IDENTITY"
	ErrTypeInvalidInput    ErrorType = "INVALID_INPUT"
	ErrTypeNotFound        ErrorType = "NOT_FOUND"
	ErrTypeInternal        ErrorType = "INTERNAL"
	ErrTypeUnavailable     ErrorType = "UNAVAILABLE"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// MalformedRecord marks a raw posting whose payload cannot be parsed into
// any known source shape. The record is rejected; the batch continues.
func MalformedRecord(message string, err error) *DomainError {
	return New(ErrTypeMalformedRecord, message, err)
}

// MissingIdentity marks a raw posting with no usable source id and no
// title/company fallback to fingerprint.
func MissingIdentity(message string, err error) *DomainError {
	return New(ErrTypeMissingIdentity, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

func Unavailable(message string, err error) *DomainError {
	return New(ErrTypeUnavailable, message, err)
}

// TypeOf returns the DomainError type of err, or ErrTypeInternal when err
// is not a DomainError.
func TypeOf(err error) ErrorType {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Type
	}
	return ErrTypeInternal
}
