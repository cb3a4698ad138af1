package errors

import "fmt"

type ConvertError struct {
	Code    string
	Message string
	Err     error
}

func (e *ConvertError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

var (
	ErrNotFound = func(err error) *ConvertError {
		return &ConvertError{Code: "not_found", Message: "Entry not found", Err: err}
	}
	ErrEngineLoad = func(err error) *ConvertError {
		return &ConvertError{Code: "engine_load_failure", Message: "Engine could not be loaded", Err: err}
	}
	ErrEngineNotReady = func(err error) *ConvertError {
		return &ConvertError{Code: "engine_not_ready", Message: "Engine is not ready", Err: err}
	}
	ErrEngineCall = func(err error) *ConvertError {
		return &ConvertError{Code: "engine_call_failure", Message: "Engine call failed", Err: err}
	}
	ErrEmptyOutput = func(err error) *ConvertError {
		return &ConvertError{Code: "empty_output", Message: "Engine produced no output", Err: err}
	}
	ErrCleanup = func(err error) *ConvertError {
		return &ConvertError{Code: "cleanup_failure", Message: "Workspace cleanup failed", Err: err}
	}
	ErrIllegalTransition = func(err error) *ConvertError {
		return &ConvertError{Code: "illegal_transition", Message: "Entry is not in a convertible state", Err: err}
	}
	ErrInvalidFile = func(err error) *ConvertError {
		return &ConvertError{Code: "invalid_file", Message: "File type is not accepted", Err: err}
	}
	ErrNoOutput = func(err error) *ConvertError {
		return &ConvertError{Code: "no_output", Message: "Entry has no output resource", Err: err}
	}
)
