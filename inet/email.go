package inet

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/errorutil"
	"github.com/ghettovoice/neturl/internal/util"
)

// IsValidEmail checks whether s is an e-mail address of form "local@domain".
func IsValidEmail(s string) bool { return emailRe.MatchString(s) }

// EmailAddress is a validated e-mail address.
// The zero value is an empty address.
type EmailAddress struct {
	value  string
	local  string
	domain string
}

// ParseEmailAddress validates s and wraps it into [EmailAddress].
func ParseEmailAddress(s string) (EmailAddress, error) {
	m := emailRe.FindStringSubmatch(s)
	if m == nil {
		return EmailAddress{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidFormat, "email address %q", s))
	}
	return EmailAddress{value: s, local: m[1], domain: m[2]}, nil
}

// MustEmailAddress is like [ParseEmailAddress] but panics on invalid input.
func MustEmailAddress(s string) EmailAddress {
	return util.Must2(ParseEmailAddress(s))
}

// String returns the address as it was parsed.
func (e EmailAddress) String() string { return e.value }

// LocalPart returns the part before "@".
func (e EmailAddress) LocalPart() string { return e.local }

// Domain returns the part after "@".
// The e-mail pattern is more permissive than [IsValidDomain], so the result is not re-validated.
func (e EmailAddress) Domain() InternetDomain { return InternetDomain{value: e.domain} }

// Equal reports whether e and val are the same address.
func (e EmailAddress) Equal(val any) bool {
	switch v := val.(type) {
	case EmailAddress:
		return e.value == v.value
	case *EmailAddress:
		return v != nil && e.value == v.value
	default:
		return false
	}
}

// IsZero reports whether e is the zero value.
func (e EmailAddress) IsZero() bool { return e.value == "" }

// MarshalText implements [encoding.TextMarshaler].
func (e EmailAddress) MarshalText() ([]byte, error) {
	return []byte(e.value), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Empty text resets e to the zero value.
func (e *EmailAddress) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*e = EmailAddress{}
		return nil
	}
	v, err := ParseEmailAddress(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*e = v
	return nil
}
