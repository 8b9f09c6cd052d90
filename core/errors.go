// Package core holds definitions shared by all packages of the UI engine.
package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Error codes of the UI engine
const (
	NOERROR    int = 0
	EMISSING   int = 122 // element, variable or resource does not exist
	EINVALID   int = 123 // property value or registration rejected
	ESYNTAX    int = 124 // markup, selector or expression does not parse
	EDUPLICATE int = 125 // registration clashes with an existing one
	EINTERNAL  int = 126 // internal error
)

var errorTexts = map[int]string{
	NOERROR:    "OK",
	EMISSING:   "not found",
	EINVALID:   "invalid",
	ESYNTAX:    "syntax error",
	EDUPLICATE: "duplicate",
	EINTERNAL:  "internal error",
}

func errorText(ecode int) string {
	if t, ok := errorTexts[ecode]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// uiError is the error type of the engine. An error may be located at an
// element of a document tree, given by the element's address.
type uiError struct {
	cause   error
	code    int
	msg     string
	address string
}

func (e uiError) Unwrap() error {
	return e.cause
}

func (e uiError) Error() string {
	if e.address != "" {
		return fmt.Sprintf("[%d] %v at %s", e.code, e.cause, e.address)
	}
	return fmt.Sprintf("[%d] %v", e.code, e.cause)
}

func (e uiError) ErrorCode() int {
	return e.code
}

// UserMessage includes the element address, if known.
func (e uiError) UserMessage() string {
	if e.address != "" {
		return e.msg + " (at " + e.address + ")"
	}
	return e.msg
}

var _ AppError = uiError{}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return uiError{
		cause: errors.New(errorText(code)),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return uiError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// AtElement locates err at an element, given by its address (as returned
// by dom.Element.Address). Code and user message of err are kept.
// AtElement returns nil for a nil error; an error already located at an
// element keeps its address.
func AtElement(err error, address string) error {
	if err == nil || address == "" {
		return err
	}
	var e uiError
	if errors.As(err, &e) {
		if e.address != "" {
			return err
		}
		e.address = address
		return e
	}
	return uiError{cause: err, code: Code(err), msg: UserMessage(err), address: address}
}

// ElementAddress returns the address of the element an error is located at,
// or "".
func ElementAddress(err error) string {
	var e uiError
	if errors.As(err, &e) {
		return e.address
	}
	return ""
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it returns the text of the error's code.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError prints an error for the user of a command-line tool.
func UserError(err error) {
	if err == nil {
		return
	}
	var b strings.Builder
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(&b, "[%d] %s", e.ErrorCode(), e.UserMessage())
	} else {
		fmt.Fprintf(&b, "Error: %s", err.Error())
	}
	fmt.Fprintln(os.Stderr, b.String())
}
