package rop

import "errors"

// ErrMissingCause replaces a nil error handed to Fail so that a failure always
// carries a cause.
var ErrMissingCause = errors.New("failure without cause")

var _ WithError[int] = Result[int]{}

type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrMissingCause
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FailFrom moves a failure to another value type keeping the original cause.
// An input without a cause (a zero Result) becomes a failure with ErrMissingCause.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Fail[Out](from.err)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks the result into the usual Go pair.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}
