package inet_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/neturl/inet"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s    string
		want bool
	}{
		{"info@spine.io", true},
		{"first.last@spine.io", true},
		{"user+tag@mail.spine.io", true},
		{"user_name%x@spine-io.com", true},
		{"a@b.c", true},
		{strings.Repeat("a", 256) + "@spine.io", true},
		{"", false},
		{"info", false},
		{"info@", false},
		{"@spine.io", false},
		{"info@spine", false},
		{"info@@spine.io", false},
		{"in fo@spine.io", false},
		{"info@-spine.io", false},
		{"info@spine..io", false},
		{strings.Repeat("a", 257) + "@spine.io", false},
	}

	for _, c := range cases {
		t.Run(c.s, func(t *testing.T) {
			t.Parallel()

			if got := inet.IsValidEmail(c.s); got != c.want {
				t.Errorf("inet.IsValidEmail(%q) = %v, want %v", c.s, got, c.want)
			}
		})
	}
}

func TestParseEmailAddress(t *testing.T) {
	t.Parallel()

	e, err := inet.ParseEmailAddress("info@spine.io")
	if err != nil {
		t.Fatalf("inet.ParseEmailAddress() error = %v, want nil", err)
	}
	if got, want := e.String(), "info@spine.io"; got != want {
		t.Errorf("e.String() = %q, want %q", got, want)
	}
	if got, want := e.LocalPart(), "info"; got != want {
		t.Errorf("e.LocalPart() = %q, want %q", got, want)
	}
	if got, want := e.Domain().String(), "spine.io"; got != want {
		t.Errorf("e.Domain() = %q, want %q", got, want)
	}

	_, err = inet.ParseEmailAddress("info.spine.io")
	if diff := cmp.Diff(err, inet.ErrInvalidFormat, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("inet.ParseEmailAddress(\"info.spine.io\") error mismatch (-got +want):\n%v", diff)
	}
}

func TestEmailAddress_Equal(t *testing.T) {
	t.Parallel()

	e := inet.MustEmailAddress("info@spine.io")
	if !e.Equal(inet.MustEmailAddress("info@spine.io")) {
		t.Error("e.Equal(same) = false, want true")
	}
	if !e.Equal(&e) {
		t.Error("e.Equal(&e) = false, want true")
	}
	if e.Equal((*inet.EmailAddress)(nil)) {
		t.Error("e.Equal(nil) = true, want false")
	}
	if e.Equal("info@spine.io") {
		t.Error("e.Equal(string) = true, want false")
	}
}

func TestEmailAddress_Text(t *testing.T) {
	t.Parallel()

	var e inet.EmailAddress
	if !e.IsZero() {
		t.Error("e.IsZero() = false, want true")
	}
	if err := e.UnmarshalText([]byte("info@spine.io")); err != nil {
		t.Fatalf("e.UnmarshalText() error = %v, want nil", err)
	}
	text, err := e.MarshalText()
	if err != nil {
		t.Fatalf("e.MarshalText() error = %v, want nil", err)
	}
	if got, want := string(text), "info@spine.io"; got != want {
		t.Errorf("e.MarshalText() = %q, want %q", got, want)
	}

	err = e.UnmarshalText([]byte("bad"))
	if diff := cmp.Diff(err, inet.ErrInvalidFormat, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("e.UnmarshalText(\"bad\") error mismatch (-got +want):\n%v", diff)
	}
	if err := e.UnmarshalText(nil); err != nil || !e.IsZero() {
		t.Errorf("e.UnmarshalText(nil) = %v, zero = %v; want nil, true", err, e.IsZero())
	}
}
