// Package netstr provides stringifiers for URLs, e-mail addresses and Internet domains
// and registers them in the default [stringify.Registry].
package netstr

//go:generate go tool errtrace -w .

import (
	"sync"

	"github.com/ghettovoice/neturl/inet"
	"github.com/ghettovoice/neturl/stringify"
	"github.com/ghettovoice/neturl/uri"
)

// URL returns the stringifier of [uri.URL].
// Parsing follows [uri.Parse], printing follows [uri.URL.String].
func URL() stringify.Stringifier[*uri.URL] {
	return stringify.Funcs(uri.Print, uri.Parse)
}

// EmailAddress returns the stringifier of [inet.EmailAddress].
func EmailAddress() stringify.Stringifier[inet.EmailAddress] {
	return stringify.Funcs(inet.EmailAddress.String, inet.ParseEmailAddress)
}

// InternetDomain returns the stringifier of [inet.InternetDomain].
func InternetDomain() stringify.Stringifier[inet.InternetDomain] {
	return stringify.Funcs(inet.InternetDomain.String, inet.ParseInternetDomain)
}

// RegisterTo registers all stringifiers of the package in r.
// Already registered stringifiers of the same types are replaced.
func RegisterTo(r *stringify.Registry) {
	stringify.Register(r, URL())
	stringify.Register(r, EmailAddress())
	stringify.Register(r, InternetDomain())
}

var registerOnce sync.Once

func init() { registerDefault() }

func registerDefault() {
	registerOnce.Do(func() { RegisterTo(stringify.Default()) })
}

// Registry returns the default registry with the package stringifiers registered.
func Registry() *stringify.Registry {
	registerDefault()
	return stringify.Default()
}
