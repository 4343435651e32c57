package uri

import (
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/errorutil"
	"github.com/ghettovoice/neturl/internal/ioutil"
	"github.com/ghettovoice/neturl/internal/util"
)

// ErrMalformedQuery is returned when a query parameter token has no "=" separator.
const ErrMalformedQuery Error = "malformed query parameter"

// Query is a single "key=value" query parameter.
type Query struct {
	Key   string
	Value string
}

// ParseQuery parses a single "key=value" token.
//
// The token is split on the first "=", so the value may contain further "=" characters.
// An empty key or value is accepted. A token without "=" fails with [ErrMalformedQuery].
func ParseQuery(token string) (Query, error) {
	k, v, ok := strings.Cut(token, queryKVSep)
	if !ok {
		return Query{}, errtrace.Wrap(errorutil.NewWrapperError(ErrMalformedQuery, "missing %q in %q", queryKVSep, token))
	}
	return Query{Key: k, Value: v}, nil
}

// String returns "key=value". An empty value yields "key=".
func (q Query) String() string { return q.Key + queryKVSep + q.Value }

// Queries is an ordered list of query parameters.
// The same key may appear more than once, the order is kept when rendering.
type Queries []Query

// ParseQueries splits s on "&" and parses every token with [ParseQuery].
// Empty tokens are parsed as well, so "" and "a=1&" fail with [ErrMalformedQuery].
func ParseQueries(s string) (Queries, error) {
	tokens := strings.Split(s, querySep)
	qs := make(Queries, 0, len(tokens))
	for _, tok := range tokens {
		q, err := ParseQuery(tok)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// Get returns the value of the first parameter with the given key.
func (qs Queries) Get(key string) (string, bool) {
	for _, q := range qs {
		if q.Key == key {
			return q.Value, true
		}
	}
	return "", false
}

// Values returns values of all parameters with the given key in order.
func (qs Queries) Values(key string) []string {
	var vals []string
	for _, q := range qs {
		if q.Key == key {
			vals = append(vals, q.Value)
		}
	}
	return vals
}

// Has checks whether a parameter with the given key is in the list.
func (qs Queries) Has(key string) bool {
	_, ok := qs.Get(key)
	return ok
}

// Clone returns a copy of the list.
func (qs Queries) Clone() Queries { return slices.Clone(qs) }

// RenderTo writes parameters joined by "&" to w.
func (qs Queries) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, q := range qs {
		cw.WriteStringIf(i > 0, querySep).
			WriteString(q.Key, queryKVSep, q.Value)
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns parameters joined by "&".
func (qs Queries) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	qs.RenderTo(sb, nil) //nolint:errcheck
	return sb.String()
}

// Equal reports whether both lists hold the same parameters in the same order.
// Nil and empty lists are equal.
func (qs Queries) Equal(val any) bool {
	var other Queries
	switch v := val.(type) {
	case Queries:
		other = v
	case []Query:
		other = v
	case *Queries:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(qs, other)
}
