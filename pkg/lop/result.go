package lop

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try lifts Go's (value, error) convention into a Result. Cancellation
// errors are classified as Cancel, everything else as Fail.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		if IsCancellationError(err) {
			return Cancel[T](err)
		}
		return Fail[T](err)
	}
	return Success(v)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// ToOption collapses the result to its two-state form. Both Fail and
// Cancel map to None; the error payload stays reachable through Err.
func (r Result[T]) ToOption() Option[T] {
	if r.isSuccess {
		return Some(r.result)
	}
	return None[T]()
}
