// Package envelope implements the uniform {data, error} result wrapper shared
// by every domain service. A service operation never returns a Go error to its
// caller: transport failures, contract violations and panics all surface as a
// human-readable message on the envelope, so presentation code needs a single
// check instead of error handling at every call site.
package envelope

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Result wraps the outcome of a service call. Exactly one of Data and Error
// is set once the call settles. Results are never mutated after construction.
type Result[T any] struct {
	Data  *T      `json:"data"`
	Error *string `json:"error"`
}

// Success builds a Result carrying data.
func Success[T any](data T) Result[T] {
	return Result[T]{Data: &data}
}

// Failure builds a Result carrying an error message.
func Failure[T any](message string) Result[T] {
	return Result[T]{Error: &message}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Error == nil
}

// Message returns the error message, or "" on success.
func (r Result[T]) Message() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// Value returns the carried data and its zero value when absent.
func (r Result[T]) Value() T {
	if r.Data == nil {
		var zero T
		return zero
	}
	return *r.Data
}

// Msg is an error whose text is surfaced to callers verbatim. Services use it
// for fixed contract-violation messages such as "Order not found.".
type Msg string

func (m Msg) Error() string { return string(m) }

// Call runs fn and converts its outcome into a Result. Returned errors are
// normalized through MessageFor; panics anywhere in the call path are
// recovered and surfaced as a failure, never re-raised to the caller.
func Call[T any](ctx context.Context, fallback string, fn func(context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Failure[T](panicMessage(p, fallback))
		}
	}()

	data, err := fn(ctx)
	if err != nil {
		return Failure[T](MessageFor(err, fallback))
	}
	return Success(data)
}

// MessageFor normalizes an error into the text shown to callers. Msg errors
// pass through verbatim, Postgres errors use the server-provided message, and
// anything without usable text falls back to the operation's fixed string.
func MessageFor(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var m Msg
	if errors.As(err, &m) {
		return string(m)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Message != "" {
		return pgErr.Message
	}
	if text := err.Error(); text != "" {
		return text
	}
	return fallback
}

func panicMessage(p any, fallback string) string {
	if err, ok := p.(error); ok {
		return MessageFor(err, fallback)
	}
	if text := fmt.Sprintf("%v", p); text != "" && text != "<nil>" {
		return text
	}
	return fallback
}
