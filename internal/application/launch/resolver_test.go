package launch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

type bufferConsole struct {
	out strings.Builder
}

func (c *bufferConsole) ReadLine(prompt string) (string, error) {
	c.out.WriteString(prompt)
	return "", nil
}

func (c *bufferConsole) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&c.out, format, args...)
}

func (c *bufferConsole) Println(args ...interface{}) {
	fmt.Fprintln(&c.out, args...)
}

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(_ context.Context, path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

type stubSuggester struct {
	reply    string
	err      error
	requests []string
}

func (s *stubSuggester) Suggest(_ context.Context, request string, _ domain.OSName) (string, error) {
	s.requests = append(s.requests, request)
	return s.reply, s.err
}

type recordingGate struct {
	proposals []domain.Proposal
}

func (g *recordingGate) ConfirmAndRun(_ context.Context, proposal domain.Proposal) (bool, error) {
	g.proposals = append(g.proposals, proposal)
	return true, nil
}

type fixture struct {
	resolver  *Resolver
	console   *bufferConsole
	opener    *recordingOpener
	suggester *stubSuggester
	gate      *recordingGate
	probed    []string
}

func newFixture(existing ...string) *fixture {
	f := &fixture{
		console:   &bufferConsole{},
		opener:    &recordingOpener{},
		suggester: &stubSuggester{reply: "start foo"},
		gate:      &recordingGate{},
	}
	present := map[string]bool{}
	for _, path := range existing {
		present[path] = true
	}
	f.resolver = &Resolver{
		Roots: []string{"/roaming", "/pf", "/pf86"},
		Exists: func(path string) bool {
			f.probed = append(f.probed, path)
			return present[path]
		},
		Opener:    f.opener,
		Suggester: f.suggester,
		Gate:      f.gate,
		Console:   f.console,
		OS:        domain.OSWindows,
	}
	return f
}

func TestEmptyNamePrintsUsage(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.resolver.ResolveAndLaunch(context.Background(), "   "))
	assert.Equal(t, "Usage: open <appname>\n", f.console.out.String())
	assert.Empty(t, f.probed)
	assert.Empty(t, f.suggester.requests)
}

func TestFirstExistingCandidateWins(t *testing.T) {
	second := filepath.Join("/pf", "foo", "foo.exe")
	third := filepath.Join("/pf86", "foo", "foo.exe")
	f := newFixture(second, third)

	require.NoError(t, f.resolver.ResolveAndLaunch(context.Background(), "foo"))
	assert.Equal(t, []string{second}, f.opener.opened)
	assert.Equal(t, "Opening foo...\n", f.console.out.String())
	assert.Empty(t, f.suggester.requests)
	assert.Equal(t, []string{filepath.Join("/roaming", "foo", "foo.exe"), second}, f.probed)
}

func TestLaunchFailureStops(t *testing.T) {
	path := filepath.Join("/roaming", "foo", "foo.exe")
	f := newFixture(path)
	f.opener.err = errors.New("access denied")

	require.NoError(t, f.resolver.ResolveAndLaunch(context.Background(), "foo"))
	assert.Contains(t, f.console.out.String(), "Failed to open app: access denied")
	assert.Empty(t, f.suggester.requests)
	assert.Empty(t, f.gate.proposals)
}

func TestMissingAppAsksBackendOnce(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.resolver.ResolveAndLaunch(context.Background(), "foo"))
	assert.Equal(t, "App 'foo' not found locally. Asking AI...\n", f.console.out.String())
	assert.Equal(t, []string{"open foo"}, f.suggester.requests)
	require.Len(t, f.gate.proposals, 1)
	assert.Equal(t, domain.Proposal{
		Command:  "start foo",
		Label:    "Suggested by AI",
		Question: "Run this command instead? [Y/n]: ",
	}, f.gate.proposals[0])
	assert.Len(t, f.probed, 3)
}

func TestBackendFailureIsReturned(t *testing.T) {
	f := newFixture()
	f.suggester.err = &domain.BackendError{Backend: "stub", Err: errors.New("offline")}

	err := f.resolver.ResolveAndLaunch(context.Background(), "foo")
	assert.ErrorContains(t, err, "offline")
	assert.Empty(t, f.gate.proposals)
}

func TestCandidatesOrder(t *testing.T) {
	got := Candidates([]string{"a", "", "b"}, "app")
	assert.Equal(t, []string{filepath.Join("a", "app", "app.exe"), filepath.Join("b", "app", "app.exe")}, got)
}

func TestDefaultRootsFromEnvironment(t *testing.T) {
	t.Setenv("APPDATA", "/data/roaming")
	t.Setenv("ProgramFiles", "/data/pf")
	t.Setenv("ProgramFiles(x86)", "")

	roots := DefaultRoots()
	require.Len(t, roots, 3)
	assert.Equal(t, "/data/roaming", roots[0])
	assert.Equal(t, "/data/pf", roots[1])
	assert.Equal(t, `C:\Program Files (x86)`, roots[2])
}
