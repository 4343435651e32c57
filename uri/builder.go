package uri

// Builder accumulates parts of a [URL].
// The zero value is ready to use.
type Builder struct {
	u URL
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return new(Builder) }

func (b *Builder) SetProtocol(p Protocol) *Builder {
	b.u.proto = p
	return b
}

func (b *Builder) SetUser(ui UserInfo) *Builder {
	b.u.user, b.u.hasUser = ui, true
	return b
}

func (b *Builder) ClearUser() *Builder {
	b.u.user, b.u.hasUser = UserInfo{}, false
	return b
}

func (b *Builder) SetAddr(addr Addr) *Builder {
	b.u.addr = addr
	return b
}

// SetHost replaces the host keeping the port.
func (b *Builder) SetHost(host string) *Builder {
	b.u.addr.host = host
	return b
}

func (b *Builder) SetPort(port string) *Builder {
	b.u.addr.port, b.u.addr.hasPort = port, true
	return b
}

func (b *Builder) ClearPort() *Builder {
	b.u.addr.port, b.u.addr.hasPort = "", false
	return b
}

// SetPath sets the path. It is given without the leading "/".
func (b *Builder) SetPath(path string) *Builder {
	b.u.path, b.u.hasPath = path, true
	return b
}

func (b *Builder) ClearPath() *Builder {
	b.u.path, b.u.hasPath = "", false
	return b
}

// AddQuery appends a query parameter.
func (b *Builder) AddQuery(q Query) *Builder {
	b.u.queries = append(b.u.queries, q)
	return b
}

// SetQueries replaces all query parameters with a copy of qs.
func (b *Builder) SetQueries(qs Queries) *Builder {
	b.u.queries = qs.Clone()
	return b
}

func (b *Builder) SetFragment(frag string) *Builder {
	b.u.fragment, b.u.hasFrag = frag, true
	return b
}

func (b *Builder) ClearFragment() *Builder {
	b.u.fragment, b.u.hasFrag = "", false
	return b
}

// Build returns a new URL. The builder can be reused, further changes do not affect built URLs.
func (b *Builder) Build() *URL {
	return b.u.Clone()
}
