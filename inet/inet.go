// Package inet provides validation and value types for e-mail addresses and Internet domain names.
package inet

//go:generate go tool errtrace -w .

import (
	"regexp"

	"github.com/ghettovoice/neturl/internal/errorutil"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

// ErrInvalidFormat is returned when a value does not match the expected format.
const ErrInvalidFormat Error = "invalid format"

const (
	labelExpr  = `[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?`
	tldExpr    = `[A-Za-z]{2,63}`
	domainExpr = `(?:` + labelExpr + `\.)+` + tldExpr

	emailLocalExpr  = `[A-Za-z0-9+._%-]{1,256}`
	emailDomainExpr = `[A-Za-z0-9][A-Za-z0-9-]{0,64}(?:\.[A-Za-z0-9][A-Za-z0-9-]{0,25})+`
	emailExpr       = `(` + emailLocalExpr + `)@(` + emailDomainExpr + `)`
)

var (
	domainRe = regexp.MustCompile(`^` + domainExpr + `$`)
	emailRe  = regexp.MustCompile(`^` + emailExpr + `$`)
)

// DomainPattern returns the pattern used by [IsValidDomain].
// The returned value must not be modified.
func DomainPattern() *regexp.Regexp { return domainRe }

// EmailPattern returns the pattern used by [IsValidEmail].
// The first and second submatches are the local part and the domain.
// The returned value must not be modified.
func EmailPattern() *regexp.Regexp { return emailRe }
