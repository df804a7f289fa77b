package mock

import (
	"encoding/json"
	"net/http"

	domainerrors "telemock/internal/domain/errors"
	"telemock/internal/errors"
)

// Fields are the endpoint-specific keys of an envelope, e.g. "usuarios".
type Fields map[string]any

// Response is the uniform envelope: success, an optional message and the
// endpoint's own keys at the top level.
type Response struct {
	Status  int
	Success bool
	Message string
	Fields  Fields

	err error
}

// OK is a 200 success envelope.
func OK(fields Fields) *Response {
	return &Response{Status: http.StatusOK, Success: true, Fields: fields}
}

// Created is a 201 success envelope.
func Created(fields Fields) *Response {
	return &Response{Status: http.StatusCreated, Success: true, Fields: fields}
}

// Fail renders err as a failure envelope. Application errors keep their
// status and message; anything else becomes the generic internal error.
func Fail(err error) *Response {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		appErr = domainerrors.ErrInternalError
	}

	return &Response{
		Status:  appErr.HTTPCode(),
		Message: appErr.Error(),
		err:     err,
	}
}

// WithMessage sets the envelope message.
func (r *Response) WithMessage(message string) *Response {
	r.Message = message

	return r
}

// Err returns the error a failure envelope was built from.
func (r *Response) Err() error {
	return r.err
}

// MarshalJSON flattens Fields next to success and message.
func (r *Response) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+2)
	for key, value := range r.Fields {
		out[key] = value
	}
	out["success"] = r.Success
	if r.Message != "" {
		out["message"] = r.Message
	}

	return json.Marshal(out)
}
