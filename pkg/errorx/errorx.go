// Package errorx provides coded errors for the REST surface. Every
// user-visible error carries a business code that maps to an HTTP status
// and a safe external message via the Coder registry.
package errorx

import (
	"fmt"
	"net/http"
	"sync"
)

// Coder describes an error code: the business code, the HTTP status it
// maps to, the external message, and an optional reference document.
type Coder interface {
	// Code returns the integer business code.
	Code() int
	// HTTPStatus returns the associated HTTP status code.
	HTTPStatus() int
	// String returns the external, user-safe message.
	String() string
	// Reference returns a document URL for the error, if any.
	Reference() string
}

var (
	codeMu sync.RWMutex
	codes  = map[int]Coder{}
)

// unknownCoder is returned for errors carrying no registered code.
var unknownCoder = defaultCoder{
	code: 1,
	http: http.StatusInternalServerError,
	msg:  "An internal server error occurred",
}

type defaultCoder struct {
	code int
	http int
	msg  string
	ref  string
}

func (c defaultCoder) Code() int         { return c.code }
func (c defaultCoder) HTTPStatus() int   { return c.http }
func (c defaultCoder) String() string    { return c.msg }
func (c defaultCoder) Reference() string { return c.ref }

// Register adds a Coder to the registry. Registering code 1 is reserved.
func Register(coder Coder) error {
	if coder.Code() == unknownCoder.Code() {
		return fmt.Errorf("code %d is reserved", unknownCoder.Code())
	}

	codeMu.Lock()
	defer codeMu.Unlock()
	if _, ok := codes[coder.Code()]; ok {
		return fmt.Errorf("code %d is already registered", coder.Code())
	}
	codes[coder.Code()] = coder
	return nil
}

// MustRegister adds a Coder to the registry, panicking on conflict.
// Intended for package init blocks.
func MustRegister(coder Coder) {
	if err := Register(coder); err != nil {
		panic(err)
	}
}

// withCode is an error with an attached business code and cause.
type withCode struct {
	code  int
	msg   string
	cause error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s: %s", w.msg, w.cause.Error())
	}
	return w.msg
}

func (w *withCode) Unwrap() error { return w.cause }

// NewC creates a new coded error with a formatted message.
func NewC(code int, format string, args ...interface{}) error {
	return &withCode{code: code, msg: fmt.Sprintf(format, args...)}
}

// WrapC wraps err with a business code and a formatted message. A nil
// err yields a coded error with no cause.
func WrapC(err error, code int, format string, args ...interface{}) error {
	return &withCode{code: code, msg: fmt.Sprintf(format, args...), cause: err}
}

// ParseCoder extracts the Coder from err. Errors without a registered
// code resolve to the unknown coder.
func ParseCoder(err error) Coder {
	if err == nil {
		return nil
	}
	if w, ok := err.(*withCode); ok {
		codeMu.RLock()
		defer codeMu.RUnlock()
		if coder, ok := codes[w.code]; ok {
			return coder
		}
	}
	return unknownCoder
}

// IsCode reports whether err carries the given business code.
func IsCode(err error, code int) bool {
	w, ok := err.(*withCode)
	return ok && w.code == code
}
