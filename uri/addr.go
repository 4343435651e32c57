package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/ioutil"
)

// Addr is a container for host and optional port.
// The port is kept as text exactly as it was given.
type Addr struct {
	host    string
	port    string
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	return Addr{host: host}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host, port string) Addr {
	return Addr{host: host, port: port, hasPort: true}
}

// ParseAddr splits s into host and port on the first ":".
// It never fails, s without ":" is the host alone.
func ParseAddr(s string) Addr {
	if host, port, ok := strings.Cut(s, hostPortSep); ok {
		return HostPort(host, port)
	}
	return Host(s)
}

// Host returns the hostname portion of the address.
func (addr Addr) Host() string { return addr.host }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (string, bool) { return addr.port, addr.hasPort }

// RenderTo writes "host[:port]" to w.
func (addr Addr) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(addr.host).
		WriteStringIf(addr.hasPort, hostPortSep, addr.port)
	return errtrace.Wrap2(cw.Result())
}

// String formats the address as host[:port].
func (addr Addr) String() string {
	if !addr.hasPort {
		return addr.host
	}
	return addr.host + hostPortSep + addr.port
}

// Format implements fmt.Formatter to support custom formatting verbs for Addr values.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods Addr
		type Addr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Addr(addr))
		return
	}
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return addr.host == other.host && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsZero reports whether the address has neither host nor port.
func (addr Addr) IsZero() bool { return addr.host == "" && addr.port == "" && !addr.hasPort }

// MarshalText implements [encoding.TextMarshaler].
func (addr Addr) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (addr *Addr) UnmarshalText(text []byte) error {
	*addr = ParseAddr(string(text))
	return nil
}
