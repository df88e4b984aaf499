package engine

import (
	"errors"
	"fmt"
)

// Code identifies a class of engine failure. Codes are stable strings
// surfaced to API callers; the HTTP layer maps them onto status codes.
type Code string

const (
	CodeInvalidGeometry   Code = "InvalidGeometry"
	CodeInvalidMass       Code = "InvalidMass"
	CodeUnknownMaterial   Code = "UnknownMaterial"
	CodeInvalidMaterial   Code = "InvalidMaterial"
	CodeMissingConstraint Code = "MissingConstraint"
	CodeMissingLoad       Code = "MissingLoad"
	CodeGateNotSatisfied  Code = "GateNotSatisfied"
)

// Error is a rejected operation. Nothing in this engine is fatal to the
// process: every failure is returned to the caller, who decides whether to
// retry with corrected input.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// errorf builds an *Error with a formatted message.
func errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the engine error code from err, if it carries one.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
