package inet

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/neturl/internal/errorutil"
	"github.com/ghettovoice/neturl/internal/util"
)

// IsValidDomain checks whether s is a host name with at least two labels and an alphabetic top-level label.
// IP literals are rejected, as well as names exceeding DNS length limits.
func IsValidDomain(s string) bool {
	if !domainRe.MatchString(s) {
		return false
	}
	_, ok := dns.IsDomainName(s)
	return ok
}

// InternetDomain is a validated Internet domain name.
// The zero value is an empty domain.
type InternetDomain struct {
	value string
}

// ParseInternetDomain validates s and wraps it into [InternetDomain].
func ParseInternetDomain(s string) (InternetDomain, error) {
	if !IsValidDomain(s) {
		return InternetDomain{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidFormat, "domain %q", s))
	}
	return InternetDomain{value: s}, nil
}

// MustInternetDomain is like [ParseInternetDomain] but panics on invalid input.
func MustInternetDomain(s string) InternetDomain {
	return util.Must2(ParseInternetDomain(s))
}

// String returns the domain name as it was parsed.
func (d InternetDomain) String() string { return d.value }

// Labels returns the domain labels from left to right.
func (d InternetDomain) Labels() []string {
	if d.value == "" {
		return nil
	}
	return dns.SplitDomainName(d.value)
}

// Fqdn returns the fully qualified form of the domain, i.e. with a trailing dot.
func (d InternetDomain) Fqdn() string {
	if d.value == "" {
		return ""
	}
	return dns.Fqdn(d.value)
}

// Equal reports whether d and val are the same domain.
// Domain names are compared case-insensitively.
func (d InternetDomain) Equal(val any) bool {
	var other InternetDomain
	switch v := val.(type) {
	case InternetDomain:
		other = v
	case *InternetDomain:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return strings.EqualFold(d.value, other.value)
}

// IsZero reports whether d is the zero value.
func (d InternetDomain) IsZero() bool { return d.value == "" }

// MarshalText implements [encoding.TextMarshaler].
func (d InternetDomain) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Empty text resets d to the zero value.
func (d *InternetDomain) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = InternetDomain{}
		return nil
	}
	v, err := ParseInternetDomain(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*d = v
	return nil
}
