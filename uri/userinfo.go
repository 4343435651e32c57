package uri

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/neturl/internal/ioutil"
	"github.com/ghettovoice/neturl/internal/types"
	"github.com/ghettovoice/neturl/internal/util"
)

// UserInfo is a container for user credentials of a [URL].
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
// The password may be empty, it is still reported as set by [UserInfo.Password].
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

// RenderTo writes "user[:password]" to w.
// The password and its separator are omitted when the password is absent or empty.
func (ui UserInfo) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	passwd := ui.passwd
	if passwd != "" && opts.ShouldRedactPassword() {
		passwd = types.RedactedPassword
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(ui.usrname).
		WriteStringIf(passwd != "", credentialsSep, passwd)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the UserInfo.
func (ui UserInfo) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ui.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the UserInfo.
func (ui UserInfo) String() string { return ui.Render(nil) }

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
