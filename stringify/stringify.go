// Package stringify provides a registry of bidirectional value-to-string converters keyed by type.
package stringify

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/stringifymock/stringifier.go -package=stringifymock . Stringifier

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/errorutil"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

// ErrNotRegistered is returned when no stringifier is registered for a type.
const ErrNotRegistered Error = "stringifier not registered"

// Stringifier converts values of type T to strings and back.
type Stringifier[T any] interface {
	ToString(v T) string
	FromString(s string) (T, error)
}

type funcs[T any] struct {
	to   func(T) string
	from func(string) (T, error)
}

// Funcs adapts a pair of conversion functions to [Stringifier].
func Funcs[T any](to func(T) string, from func(string) (T, error)) Stringifier[T] {
	return funcs[T]{to, from}
}

func (f funcs[T]) ToString(v T) string { return f.to(v) }

func (f funcs[T]) FromString(s string) (T, error) { return errtrace.Wrap2(f.from(s)) }
