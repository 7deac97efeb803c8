package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsRequired         = errors.New("value is required")
	ErrPreconditionFailed      = errors.New("precondition failed")
	ErrCallbackResumeFailed    = errors.New("callback resume failed")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PreconditionFailedError indicates that a conditional store mutation was
// rejected because its stated precondition did not hold against the current
// record. It carries enough context to diagnose which write lost and why.
// This error is never retried by the core; retry policy belongs to the caller.
type PreconditionFailedError struct {
	OrderID      string
	Precondition string
	Cause        error
}

// NewPreconditionFailedError creates a PreconditionFailedError without a cause.
func NewPreconditionFailedError(orderID, precondition string) *PreconditionFailedError {
	return &PreconditionFailedError{OrderID: orderID, Precondition: precondition}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping a cause.
func NewPreconditionFailedErrorWithCause(orderID, precondition string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{OrderID: orderID, Precondition: precondition, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order is: %s, precondition is: %s (cause: %s)",
			ErrPreconditionFailed, e.OrderID, sanitize(e.Precondition), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: order is: %s, precondition is: %s",
		ErrPreconditionFailed, e.OrderID, sanitize(e.Precondition))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// CallbackResumeError indicates that resuming a suspended caller failed: the
// token was unknown or already consumed. This is fatal for the invocation that
// attempted the resume; it points at a duplicate terminal trigger or a
// consistency bug and must be surfaced, never swallowed.
type CallbackResumeError struct {
	Token  string
	Reason string
}

// NewCallbackResumeError creates a CallbackResumeError for the given token.
func NewCallbackResumeError(token, reason string) *CallbackResumeError {
	return &CallbackResumeError{Token: token, Reason: reason}
}

func (e *CallbackResumeError) Error() string {
	return fmt.Sprintf("%s: token is: %s, reason is: %s",
		ErrCallbackResumeFailed, e.Token, sanitize(e.Reason))
}

func (e *CallbackResumeError) Unwrap() error {
	return ErrCallbackResumeFailed
}

// CollaboratorUnavailableError indicates an I/O failure talking to an external
// collaborator (store, event bus, menu source). It is propagated upward; the
// external scheduler owns retry and backoff.
type CollaboratorUnavailableError struct {
	Collaborator string
	Cause        error
}

// NewCollaboratorUnavailableError creates a CollaboratorUnavailableError wrapping a cause.
func NewCollaboratorUnavailableError(collaborator string, cause error) *CollaboratorUnavailableError {
	return &CollaboratorUnavailableError{Collaborator: collaborator, Cause: cause}
}

func (e *CollaboratorUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %s)",
		ErrCollaboratorUnavailable, e.Collaborator, sanitize(e.Cause))
}

func (e *CollaboratorUnavailableError) Unwrap() error {
	return ErrCollaboratorUnavailable
}
