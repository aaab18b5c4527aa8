package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

// stubExec records dispatched commands.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) SubmitPhoto(context.Context) error { return s.record("photo") }
func (s *stubExec) SubmitText(context.Context) error  { return s.record("text") }
func (s *stubExec) Login(context.Context) error       { return s.record("login") }
func (s *stubExec) Register(context.Context) error    { return s.record("register") }
func (s *stubExec) Logout(context.Context) error      { return s.record("logout") }
func (s *stubExec) Credits(context.Context) error     { return s.record("credits") }
func (s *stubExec) Profile(context.Context) error     { return s.record("profile") }
func (s *stubExec) Buy(context.Context) error         { return s.record("buy") }
func (s *stubExec) Privacy(context.Context) error     { return s.record("privacy") }

func muteREPLOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runScript(t *testing.T, exec *stubExec, script string) {
	t.Helper()
	muteREPLOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "text\nphoto\ncredits\nbuy\nexit\n")

	want := []string{"text", "photo", "credits", "buy"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, exec.calls[i], want[i])
		}
	}
}

func TestRunREPL_SkipsBlankAndUnknownLines(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n\nfrobnicate\ntext\nquit\n")

	if len(exec.calls) != 1 || exec.calls[0] != "text" {
		t.Fatalf("calls = %v, want [text]", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "login\n")

	if len(exec.calls) != 1 || exec.calls[0] != "login" {
		t.Fatalf("calls = %v, want [login]", exec.calls)
	}
}

func TestRunREPL_AuthCommands(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "login\nregister\nlogout\nprofile\nprivacy\nexit\n")

	want := []string{"login", "register", "logout", "profile", "privacy"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}
