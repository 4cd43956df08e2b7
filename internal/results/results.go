// Package results defines the uniform outcome envelopes every use
// case returns. Boundary layers translate Status to a wire status;
// the core never does.
package results

import "github.com/yungbote/realista-backend/internal/types"

type Status string

const (
	StatusOk         Status = "ok"
	StatusCreated    Status = "created"
	StatusNotFound   Status = "not_found"
	StatusInvalid    Status = "invalid"
	StatusUnexpected Status = "unexpected"
)

// FieldError is a single validation rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the discriminated outcome of a single-value use case.
type Result[T any] struct {
	Status  Status       `json:"status"`
	Data    T            `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Status: StatusOk, Data: data}
}

func Created[T any](data T) Result[T] {
	return Result[T]{Status: StatusCreated, Data: data}
}

func NotFound[T any](message string) Result[T] {
	return Result[T]{Status: StatusNotFound, Message: message}
}

func Invalid[T any](errors []FieldError) Result[T] {
	return Result[T]{Status: StatusInvalid, Message: "validation failed", Errors: errors}
}

func Unexpected[T any](message string) Result[T] {
	return Result[T]{Status: StatusUnexpected, Message: message}
}

// Paged is the envelope of list-style reads. Meta is present only on
// success.
type Paged[T any] struct {
	Status  Status          `json:"status"`
	Data    []T             `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    *types.PageMeta `json:"metadata,omitempty"`
}

func OkPage[T any](items []T, meta types.PageMeta) Paged[T] {
	return Paged[T]{Status: StatusOk, Data: items, Meta: &meta}
}

func UnexpectedPage[T any](message string) Paged[T] {
	return Paged[T]{Status: StatusUnexpected, Message: message}
}
