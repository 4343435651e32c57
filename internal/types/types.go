// Package types contains common interfaces shared by neturl value types.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
// A nil *RenderOptions means defaults.
type RenderOptions struct {
	// RedactPassword replaces a non-empty password with [RedactedPassword].
	RedactPassword bool `json:"redact_password,omitempty"`
}

// RedactedPassword is rendered in place of a password when [RenderOptions.RedactPassword] is set.
const RedactedPassword = "xxxxx"

// ShouldRedactPassword reports whether opts ask to hide passwords.
func (opts *RenderOptions) ShouldRedactPassword() bool {
	return opts != nil && opts.RedactPassword
}

type ValidFlag interface {
	IsValid() bool
}

// IsValid returns true if the value has method `IsValid() bool` and it returns true.
func IsValid(v any) bool {
	vv, ok := v.(ValidFlag)
	return ok && vv.IsValid()
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}
