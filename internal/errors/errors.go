package errors

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
)

type AppError struct {
	Code            Code
	Message         string
	InternalDetails string
	IsUserFacing    bool
	SuggestedAction string
	WrappedError    error
	StackTrace      string
}

func (e *AppError) Error() string {
	if e.WrappedError != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.WrappedError)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.WrappedError
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

func NewUserFacing(code Code, message string, suggestion string) *AppError {
	return &AppError{
		Code:            code,
		Message:         message,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

// Wrap returns err unchanged when it already carries an AppError so the
// innermost code survives propagation.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:         code,
		Message:      message,
		WrappedError: err,
		StackTrace:   string(debug.Stack()),
	}
}

func WrapUserFacing(err error, code Code, message string, suggestion string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:            code,
			Message:         message,
			InternalDetails: appErr.Error(),
			IsUserFacing:    true,
			SuggestedAction: suggestion,
			WrappedError:    err,
			StackTrace:      appErr.StackTrace,
		}
	}

	return &AppError{
		Code:            code,
		Message:         message,
		WrappedError:    err,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Kind classifies err. Context cancellation wins over any code so callers
// can stop iterating instead of logging and skipping.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	if kind, ok := codeKinds[GetCode(err)]; ok {
		return kind
	}
	return KindOther
}

func GetUserFacingMessage(err error) (string, string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.IsUserFacing {
			return appErr.Message, appErr.SuggestedAction, true
		}
		nextErr := errors.Unwrap(appErr)
		for nextErr != nil {
			if errors.As(nextErr, &appErr) {
				if appErr.IsUserFacing {
					return appErr.Message, appErr.SuggestedAction, true
				}
				nextErr = errors.Unwrap(appErr)
			} else {
				break
			}
		}
	}
	return "An unexpected error occurred.", "Check logs for more details.", false
}
