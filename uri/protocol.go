package uri

import (
	"fmt"
	"strconv"
)

// Protocol is the part of a URL in front of "://".
//
// It holds exactly one of: a known [Schema], a raw scheme name that is not in the
// schema table, or nothing at all (undefined). The zero value is undefined.
type Protocol struct {
	schema  Schema
	name    string
	hasName bool
}

// SchemaProtocol returns a protocol of the known schema s.
func SchemaProtocol(s Schema) Protocol { return Protocol{schema: s} }

// NamedProtocol returns a protocol with the raw scheme name.
// The name is kept as is, even if it matches a known schema; use [ParseProtocol] to resolve it.
func NamedProtocol(name string) Protocol { return Protocol{name: name, hasName: true} }

// ParseProtocol resolves the scheme token through the schema table and falls back
// to a named protocol for unknown tokens.
func ParseProtocol(token string) Protocol {
	if s := ParseSchema(token); s.IsValid() {
		return SchemaProtocol(s)
	}
	return NamedProtocol(token)
}

// Schema returns the known schema or [SchemaUndefined] for named and undefined protocols.
func (p Protocol) Schema() Schema {
	if p.hasName {
		return SchemaUndefined
	}
	return p.schema
}

// Name returns the raw scheme name, in case it is set, and a bool flag indicating whether it is set.
func (p Protocol) Name() (string, bool) { return p.name, p.hasName }

// IsUndefined reports whether the protocol holds neither a known schema nor a name.
func (p Protocol) IsUndefined() bool { return !p.hasName && !p.schema.IsValid() }

// String returns the scheme text rendered in front of "://".
func (p Protocol) String() string {
	if p.hasName {
		return p.name
	}
	return p.schema.String()
}

// Format implements fmt.Formatter for custom formatting of the Protocol.
func (p Protocol) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods Protocol
		type Protocol hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Protocol(p))
		return
	}
}

// Equal compares this Protocol with another for equality.
func (p Protocol) Equal(val any) bool {
	var other Protocol
	switch v := val.(type) {
	case Protocol:
		other = v
	case *Protocol:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if p.IsUndefined() || other.IsUndefined() {
		return p.IsUndefined() == other.IsUndefined()
	}
	return p.hasName == other.hasName && p.name == other.name && p.schema == other.schema
}
