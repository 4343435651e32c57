package uri

//go:generate go tool errtrace -w .

import (
	"io"

	"github.com/ghettovoice/neturl/internal/errorutil"
	"github.com/ghettovoice/neturl/internal/types"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

// RenderOptions contains options for rendering URLs.
type RenderOptions = types.RenderOptions

const (
	protocolEnding    = "://"
	credentialsEnding = "@"
	credentialsSep    = ":"
	hostEnding        = "/"
	hostPortSep       = ":"
	fragmentStart     = "#"
	queriesStart      = "?"
	querySep          = "&"
	queryKVSep        = "="
)

type renderer interface {
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// renderFn binds opts to r for use with CountingWriter.Call.
func renderFn(r renderer, opts *RenderOptions) func(io.Writer) (int, error) {
	return func(w io.Writer) (int, error) {
		return r.RenderTo(w, opts) //errtrace:skip
	}
}

var (
	_ types.Renderer        = (*URL)(nil)
	_ types.Renderer        = UserInfo{}
	_ types.Equalable       = (*URL)(nil)
	_ types.Equalable       = Addr{}
	_ types.Equalable       = Protocol{}
	_ types.Equalable       = Queries(nil)
	_ types.Cloneable[*URL] = (*URL)(nil)
	_ types.ValidFlag       = (*URL)(nil)
	_ types.ValidFlag       = Schema(0)
)
