package stringify

import (
	"context"
	"iter"
	"log/slog"
	"reflect"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/errorutil"
	"github.com/ghettovoice/neturl/internal/log"
	"github.com/ghettovoice/neturl/internal/syncutil"
)

// RegistryOptions are options for [NewRegistry].
type RegistryOptions struct {
	// Log is a logger for registry events.
	// If nil, the [log.Noop] logger is used.
	Log *slog.Logger
}

func (o *RegistryOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Registry maps value types to their stringifiers.
// It is safe for concurrent use.
type Registry struct {
	items syncutil.RWMap[reflect.Type, any]
	log   *slog.Logger
}

// NewRegistry creates a new empty registry.
// Options are optional, nil means default options.
func NewRegistry(opts *RegistryOptions) *Registry {
	return &Registry{log: opts.log()}
}

var defaultRegistry = sync.OnceValue(func() *Registry { return NewRegistry(nil) })

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry() }

// Len returns the number of registered types.
func (r *Registry) Len() int { return r.items.Len() }

// Has reports whether a stringifier is registered for typ.
func (r *Registry) Has(typ reflect.Type) bool { return r.items.Has(typ) }

// Types iterates over the registered types in no particular order.
func (r *Registry) Types() iter.Seq[reflect.Type] {
	return func(yield func(reflect.Type) bool) {
		for typ := range r.items.All() {
			if !yield(typ) {
				return
			}
		}
	}
}

// Register registers s as the stringifier of T in r, replacing any previous one.
func Register[T any](r *Registry, s Stringifier[T]) {
	if s == nil {
		panic(errorutil.NewInvalidArgumentError("nil stringifier"))
	}

	typ := reflect.TypeFor[T]()
	_, replaced := r.items.Swap(typ, s)
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "stringifier registered",
		slog.String("type", typ.String()),
		slog.Bool("replaced", replaced),
	)
}

// Find returns the stringifier of T registered in r.
func Find[T any](r *Registry) (Stringifier[T], bool) {
	v, ok := r.items.Get(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	s, ok := v.(Stringifier[T])
	return s, ok
}

// ToString converts v to string with the stringifier of T registered in r.
func ToString[T any](r *Registry, v T) (string, error) {
	s, err := lookup[T](r)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return s.ToString(v), nil
}

// FromString converts str to T with the stringifier of T registered in r.
func FromString[T any](r *Registry, str string) (T, error) {
	s, err := lookup[T](r)
	if err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(s.FromString(str))
}

func lookup[T any](r *Registry) (Stringifier[T], error) {
	s, ok := Find[T](r)
	if !ok {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNotRegistered, "type %s", reflect.TypeFor[T]()))
	}
	return s, nil
}
