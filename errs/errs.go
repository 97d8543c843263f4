// Package errs defines the engine-wide error taxonomy. Errors are tagged
// with the subsystem they originate from so callers can branch on the
// category without matching message strings.
package errs

import (
	"errors"
	"fmt"
)

// Category identifies the subsystem an error originated from.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryRender
	CategoryAsset
	CategoryECS
	CategoryWindow
	CategoryInput
	CategoryConfig
	CategoryTime
	CategoryIO
)

func (c Category) String() string {
	switch c {
	case CategoryRender:
		return "render"
	case CategoryAsset:
		return "asset"
	case CategoryECS:
		return "ecs"
	case CategoryWindow:
		return "window"
	case CategoryInput:
		return "input"
	case CategoryConfig:
		return "config"
	case CategoryTime:
		return "time"
	case CategoryIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a category-tagged engine error. Path and Key carry optional
// detail for asset and config errors respectively.
type Error struct {
	Category Category
	Message  string
	Path     string
	Key      string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Category.String() + ": " + e.Message
	if e.Path != "" {
		msg += " (path: " + e.Path + ")"
	}
	if e.Key != "" {
		msg += " (key: " + e.Key + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error in the given category.
func New(c Category, message string) *Error {
	return &Error{Category: c, Message: message}
}

// Wrap creates an error in the given category with an underlying cause.
func Wrap(c Category, message string, err error) *Error {
	return &Error{Category: c, Message: message, Err: err}
}

func Render(message string) *Error { return New(CategoryRender, message) }
func Asset(message string) *Error  { return New(CategoryAsset, message) }
func ECS(message string) *Error    { return New(CategoryECS, message) }
func Window(message string) *Error { return New(CategoryWindow, message) }
func Input(message string) *Error  { return New(CategoryInput, message) }
func Config(message string) *Error { return New(CategoryConfig, message) }
func Time(message string) *Error   { return New(CategoryTime, message) }

// AssetPath creates an asset error that records the offending path.
func AssetPath(message, path string) *Error {
	return &Error{Category: CategoryAsset, Message: message, Path: path}
}

// ConfigKey creates a config error that records the offending key.
func ConfigKey(message, key string) *Error {
	return &Error{Category: CategoryConfig, Message: message, Key: key}
}

// IO wraps a low-level I/O failure.
func IO(err error) *Error {
	return &Error{Category: CategoryIO, Message: "i/o failure", Err: err}
}

// WithContext prefixes the error message with additional context while
// keeping the category and cause chain intact. Non-engine errors are
// wrapped as CategoryUnknown.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Category: e.Category,
			Message:  fmt.Sprintf("%s: %s", context, e.Message),
			Path:     e.Path,
			Key:      e.Key,
			Err:      e.Err,
		}
	}
	return &Error{Category: CategoryUnknown, Message: context, Err: err}
}

// CategoryOf reports the category of err, or CategoryUnknown when err is
// not an engine error.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryUnknown
}

// IsCategory reports whether err (or anything it wraps) belongs to the
// given category.
func IsCategory(err error, c Category) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Category == c
	}
	return false
}
