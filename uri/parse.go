package uri

import (
	"context"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/neturl/internal/util"
)

// parseStage is a state of the parser state machine.
type parseStage string

const (
	stageInit        parseStage = "init"
	stageProtocol    parseStage = "protocol"
	stageCredentials parseStage = "credentials"
	stageFragment    parseStage = "fragment"
	stageQueries     parseStage = "queries"
	stageHost        parseStage = "host"
	stagePath        parseStage = "path"
)

const evtNext = "next"

// stageFunc consumes a part of rest, stores the result in b and returns what is left.
type stageFunc func(rest string, b *Builder) (string, error)

// parseStages lists stages in the order they run.
// Fragment and queries are stripped from the tail before host and path are carved out.
var parseStages = []struct {
	stage parseStage
	fn    stageFunc
}{
	{stageProtocol, parseProtocol},
	{stageCredentials, parseCredentials},
	{stageFragment, parseFragment},
	{stageQueries, parseQueries},
	{stageHost, parseHost},
	{stagePath, parsePath},
}

// parseState is passed with every transition, so stages share nothing but their arguments.
type parseState struct {
	rest string
	b    *Builder
}

// Parse decomposes raw into a [URL].
//
// Parsing is lenient and never fails, except for query parameters without "=",
// which fail with [ErrMalformedQuery]. See the package documentation for the order
// in which delimiters are searched.
func Parse(raw string) (*URL, error) {
	st := &parseState{rest: raw, b: NewBuilder()}
	fsm := newParseFSM()
	for fsm.MustState() != stagePath {
		if err := fsm.Fire(evtNext, st); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return st.b.Build(), nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(raw string) *URL {
	return util.Must2(Parse(raw))
}

func newParseFSM() *stateless.StateMachine {
	fsm := stateless.NewStateMachine(stageInit)
	prev := stageInit
	for _, s := range parseStages {
		fsm.Configure(prev).Permit(evtNext, s.stage)
		fsm.Configure(s.stage).OnEntry(runStage(s.fn))
		prev = s.stage
	}
	return fsm
}

func runStage(fn stageFunc) func(context.Context, ...any) error {
	return func(_ context.Context, args ...any) error {
		st := args[0].(*parseState) //nolint:forcetypeassert
		rest, err := fn(st.rest, st.b)
		if err != nil {
			return errtrace.Wrap(err)
		}
		st.rest = rest
		return nil
	}
}

func parseProtocol(rest string, b *Builder) (string, error) {
	token, tail, ok := util.Cut(rest, protocolEnding)
	if !ok {
		b.SetProtocol(Protocol{})
		return rest, nil
	}
	b.SetProtocol(ParseProtocol(token))
	return tail, nil
}

func parseCredentials(rest string, b *Builder) (string, error) {
	creds, tail, ok := util.Cut(rest, credentialsEnding)
	if !ok {
		return rest, nil
	}
	if usrname, passwd, ok := strings.Cut(creds, credentialsSep); ok {
		b.SetUser(UserPassword(usrname, passwd))
	} else {
		b.SetUser(User(creds))
	}
	return tail, nil
}

func parseFragment(rest string, b *Builder) (string, error) {
	head, frag, ok := util.CutLast(rest, fragmentStart)
	if ok {
		b.SetFragment(frag)
	}
	return head, nil
}

func parseQueries(rest string, b *Builder) (string, error) {
	head, raw, ok := strings.Cut(rest, queriesStart)
	if !ok {
		return rest, nil
	}
	qs, err := ParseQueries(raw)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	b.SetQueries(qs)
	return head, nil
}

func parseHost(rest string, b *Builder) (string, error) {
	hostport, tail, _ := strings.Cut(rest, hostEnding)
	b.SetAddr(ParseAddr(hostport))
	return tail, nil
}

func parsePath(rest string, b *Builder) (string, error) {
	if rest != "" {
		b.SetPath(rest)
	}
	return "", nil
}
