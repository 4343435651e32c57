package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/ioutil"
	"github.com/ghettovoice/neturl/internal/util"
)

// URL is a decomposed URL.
//
// A URL is immutable, use [Builder] to construct or [URL.ToBuilder] to derive a new one.
// Optional parts are reported together with a presence flag, an absent part is never
// rendered, a present but empty part is rendered with its delimiter.
type URL struct {
	proto    Protocol
	user     UserInfo
	hasUser  bool
	addr     Addr
	path     string
	hasPath  bool
	queries  Queries
	fragment string
	hasFrag  bool
}

// Protocol returns the protocol. It is undefined when the parsed input had no "://".
func (u *URL) Protocol() Protocol {
	if u == nil {
		return Protocol{}
	}
	return u.proto
}

// User returns the credentials, in case they are set, and a bool flag indicating whether they are set.
func (u *URL) User() (UserInfo, bool) {
	if u == nil {
		return UserInfo{}, false
	}
	return u.user, u.hasUser
}

// Addr returns the host and the optional port.
func (u *URL) Addr() Addr {
	if u == nil {
		return Addr{}
	}
	return u.addr
}

// Host returns the host. It may be empty.
func (u *URL) Host() string { return u.Addr().Host() }

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (u *URL) Port() (string, bool) { return u.Addr().Port() }

// Path returns the path without the leading "/", in case it is set,
// and a bool flag indicating whether it is set.
func (u *URL) Path() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.path, u.hasPath
}

// Queries returns a copy of the query parameters.
func (u *URL) Queries() Queries {
	if u == nil {
		return nil
	}
	return u.queries.Clone()
}

// Fragment returns the fragment, in case it is set, and a bool flag indicating whether it is set.
func (u *URL) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFrag
}

// RenderTo writes the canonical form of the URL to w.
func (u *URL) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteStringIf(!u.proto.IsUndefined(), u.proto.String(), protocolEnding)
	if u.hasUser {
		cw.Call(renderFn(u.user, opts)).WriteString(credentialsEnding)
	}
	cw.Call(renderFn(u.addr, opts))
	cw.WriteStringIf(u.hasPath, hostEnding, u.path)
	if len(u.queries) > 0 {
		cw.WriteString(queriesStart).Call(renderFn(u.queries, opts))
	}
	cw.WriteStringIf(u.hasFrag, fragmentStart, u.fragment)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical form of the URL rendered with the given options.
func (u *URL) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical form of the URL.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Print returns the canonical form of u. It is the inverse of [Parse].
func Print(u *URL) string { return u.String() }

// Format implements fmt.Formatter for custom formatting of the URL.
func (u *URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}

		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URL)(u))
		return
	}
}

// Equal compares this URL with another part by part.
func (u *URL) Equal(val any) bool {
	var other *URL
	switch v := val.(type) {
	case URL:
		other = &v
	case *URL:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.proto.Equal(other.proto) &&
		u.hasUser == other.hasUser && (!u.hasUser || u.user.Equal(other.user)) &&
		u.addr.Equal(other.addr) &&
		u.hasPath == other.hasPath && u.path == other.path &&
		u.queries.Equal(other.queries) &&
		u.hasFrag == other.hasFrag && u.fragment == other.fragment
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.queries = u.queries.Clone()
	return &u2
}

// IsValid reports whether the URL has a non-blank host.
// The parser does not validate anything, so a parsed URL may be invalid.
func (u *URL) IsValid() bool {
	return u != nil && util.TrimSP(u.addr.host) != ""
}

// ToBuilder returns a [Builder] initialized with a copy of the URL.
func (u *URL) ToBuilder() *Builder {
	b := NewBuilder()
	if u != nil {
		b.u = *u.Clone()
	}
	return b
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		*u = URL{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
