package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/idilsaglam/teamtodo/internal/identity"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

// isolate points config lookup and data at temp dirs and clears env
// overrides.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"TODO_DATA_DIR", "TODO_BACKEND", "TODO_MODE", "TODO_THEME", "TODO_TZ", "TODO_AUTO_DEFAULT_USER", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT", EnvIDToken} {
		t.Setenv(k, "")
	}
	return t.TempDir()
}

// runCLI executes one invocation against dir, feeding stdin.
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, int) {
	t.Helper()
	a := &App{}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--data-dir", dir, "--no-color", "--tz", "UTC"}, args...))
	err := cmd.Execute()
	if cerr := a.teardown(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		ui.Fail(&out, err.Error())
	}
	return out.String(), ExitCode(err)
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, code := runCLI(t, dir, "", args...)
	if code != 0 {
		t.Fatalf("todo %s: exit %d\n%s", strings.Join(args, " "), code, out)
	}
	return out
}

func signUp(t *testing.T, dir string) {
	t.Helper()
	mustRun(t, dir, "auth", "signup", "--username", "ab", "--display-name", "Ab", "--password", "secret1", "--confirm", "secret1")
}

func TestAddRequiresSignIn(t *testing.T) {
	dir := isolate(t)
	out, code := runCLI(t, dir, "", "add", "Buy", "milk")
	if code != 2 {
		t.Fatalf("exit: got %d, want 2\n%s", code, out)
	}
	if !strings.Contains(out, "로그인이 필요합니다.") {
		t.Fatalf("missing message:\n%s", out)
	}
}

func TestAddListDoneStats(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)

	out := mustRun(t, dir, "add", "Buy", "milk")
	if !strings.Contains(out, ui.MsgAdded) || !strings.Contains(out, "#1") {
		t.Fatalf("add output:\n%s", out)
	}
	out = mustRun(t, dir, "ls")
	if !strings.Contains(out, "Buy milk") || !strings.Contains(out, "총 1개 · 완료 0개") {
		t.Fatalf("ls output:\n%s", out)
	}

	out = mustRun(t, dir, "done", "1")
	if !strings.Contains(out, ui.MsgCompleted) {
		t.Fatalf("done output:\n%s", out)
	}
	out = mustRun(t, dir, "stats")
	if strings.TrimSpace(out) != "총 1개 · 완료 1개" {
		t.Fatalf("stats output: %q", out)
	}

	out = mustRun(t, dir, "done", "#1")
	if !strings.Contains(out, ui.MsgReopened) {
		t.Fatalf("reopen output:\n%s", out)
	}
}

func TestDoneMissingIDIsNotAnError(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)
	out := mustRun(t, dir, "done", "42")
	if !strings.Contains(out, ui.MsgNotFound) {
		t.Fatalf("output:\n%s", out)
	}
}

func TestUsageErrors(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)
	tests := []struct {
		name string
		args []string
	}{
		{"add without text", []string{"add"}},
		{"at without due", []string{"add", "x", "--at", "10:00"}},
		{"bad due", []string{"add", "x", "--due", "someday"}},
		{"bad minute", []string{"add", "x", "--due", "today", "--at", "10:10"}},
		{"done without id", []string{"done"}},
		{"rm with text id", []string{"rm", "abc"}},
		{"unknown flag", []string{"ls", "--bogus"}},
		{"bad mode", []string{"--mode", "family", "ls"}},
		{"bad backend", []string{"--backend", "redis", "ls"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code := runCLI(t, dir, "", tt.args...)
			if code != 2 {
				t.Fatalf("exit: got %d, want 2\n%s", code, out)
			}
		})
	}
}

func TestAddWithDue(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)
	mustRun(t, dir, "add", "Report", "--due", "2020-01-02", "--at", "9:30")
	out := mustRun(t, dir, "ls")
	if !strings.Contains(out, "지남 (09:30)") {
		t.Fatalf("overdue label missing:\n%s", out)
	}
}

func TestCorruptStoreFileIsRecovered(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "store.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, code := runCLI(t, dir, "", "ls")
	if code != 0 {
		t.Fatalf("ls on corrupt store: exit %d\n%s", code, out)
	}
	if !strings.Contains(out, ui.EmptyState) {
		t.Fatalf("ls on corrupt store:\n%s", out)
	}
	signUp(t, dir)
	mustRun(t, dir, "add", "fresh", "start")
	if out := mustRun(t, dir, "ls"); !strings.Contains(out, "fresh start") {
		t.Fatalf("ls after recovery:\n%s", out)
	}
}

func TestRemoveAsksFirst(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)
	mustRun(t, dir, "add", "keep", "me")

	out, code := runCLI(t, dir, "n\n", "rm", "1")
	if code != 0 || !strings.Contains(out, ui.ConfirmRemove) {
		t.Fatalf("rm declined: exit %d\n%s", code, out)
	}
	if out := mustRun(t, dir, "ls"); !strings.Contains(out, "keep me") {
		t.Fatalf("item removed without consent:\n%s", out)
	}

	out, _ = runCLI(t, dir, "y\n", "rm", "1")
	if !strings.Contains(out, ui.MsgRemoved) {
		t.Fatalf("rm confirmed:\n%s", out)
	}
	if out := mustRun(t, dir, "ls"); strings.Contains(out, "keep me") || !strings.Contains(out, ui.EmptyState) {
		t.Fatalf("item still listed or no empty state:\n%s", out)
	}
}

func TestClearCommands(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)

	out, code := runCLI(t, dir, "", "clear-completed")
	if code != 2 || !strings.Contains(out, ui.MsgNoCompleted) {
		t.Fatalf("clear-completed on nothing: exit %d\n%s", code, out)
	}
	out, code = runCLI(t, dir, "", "clear-all")
	if code != 2 || !strings.Contains(out, ui.MsgNothingToClear) {
		t.Fatalf("clear-all on nothing: exit %d\n%s", code, out)
	}

	mustRun(t, dir, "add", "a")
	mustRun(t, dir, "add", "b")
	mustRun(t, dir, "done", "1")

	out = mustRun(t, dir, "--yes", "clear-completed")
	if !strings.Contains(out, ui.MsgClearedDone) {
		t.Fatalf("clear-completed:\n%s", out)
	}
	out = mustRun(t, dir, "-y", "clear-all")
	if !strings.Contains(out, ui.MsgClearedAll) {
		t.Fatalf("clear-all:\n%s", out)
	}
	out = mustRun(t, dir, "add", "fresh")
	if !strings.Contains(out, "#1") {
		t.Fatalf("ids did not restart:\n%s", out)
	}
}

func TestTeamFlowAndChat(t *testing.T) {
	dir := isolate(t)
	signUp(t, dir)

	mustRun(t, dir, "--mode", "team", "add", "Plan", "offsite", "--team")
	mustRun(t, dir, "--mode", "team", "chat", "send", "see", "you")

	out := mustRun(t, dir, "--mode", "team", "ls")
	for _, want := range []string{"기쁨과소원 팀", "Plan offsite", "by Ab", ui.ChatWelcome, "see you"} {
		if !strings.Contains(out, want) {
			t.Errorf("team ls missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, dir, "ls")
	if strings.Contains(out, "Plan offsite") {
		t.Errorf("team item in personal list:\n%s", out)
	}

	out = mustRun(t, dir, "chat", "ls")
	if !strings.Contains(out, `Ab님이 새로운 팀 할 일을 추가했습니다: "Plan offsite"`) {
		t.Errorf("system message missing:\n%s", out)
	}
}

func TestAuthPromptsAndLogout(t *testing.T) {
	dir := isolate(t)
	out, code := runCLI(t, dir, "ab\nAb\nsecret1\nsecret1\n", "auth", "signup")
	if code != 0 || !strings.Contains(out, ui.MsgSignedUp) {
		t.Fatalf("signup: exit %d\n%s", code, out)
	}
	out = mustRun(t, dir, "auth", "whoami")
	if !strings.Contains(out, "Username: ab") {
		t.Fatalf("whoami:\n%s", out)
	}

	out = mustRun(t, dir, "--yes", "auth", "logout")
	if !strings.Contains(out, ui.MsgSignedOut) {
		t.Fatalf("logout:\n%s", out)
	}
	out, code = runCLI(t, dir, "", "auth", "login", "--username", "ab", "--password", "nope!!")
	if code != 2 || !strings.Contains(out, "사용자명 또는 비밀번호가 잘못되었습니다.") {
		t.Fatalf("bad login: exit %d\n%s", code, out)
	}
	out = mustRun(t, dir, "auth", "login", "--username", "ab", "--password", "secret1")
	if !strings.Contains(out, ui.MsgSignedIn) {
		t.Fatalf("login:\n%s", out)
	}
}

func TestSignUpValidation(t *testing.T) {
	dir := isolate(t)
	out, code := runCLI(t, dir, "", "auth", "signup", "--username", "a", "--display-name", "A", "--password", "secret1", "--confirm", "secret1")
	if code != 2 || !strings.Contains(out, "사용자명은 2-20자 사이여야 합니다.") {
		t.Fatalf("exit %d\n%s", code, out)
	}
	out = mustRun(t, dir, "auth", "whoami")
	if !strings.Contains(out, "Not signed in") {
		t.Fatalf("whoami after failed signup:\n%s", out)
	}
}

func TestAuthExternal(t *testing.T) {
	dir := isolate(t)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, identity.Claims{
		Name:             "Kim",
		Picture:          "https://example.com/kim.png",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	out := mustRun(t, dir, "auth", "external", tok)
	if !strings.Contains(out, ui.ExternalWelcome("Kim", true)) {
		t.Fatalf("first external sign-in:\n%s", out)
	}
	t.Setenv(EnvIDToken, tok)
	out = mustRun(t, dir, "auth", "external")
	if !strings.Contains(out, ui.ExternalWelcome("Kim", false)) {
		t.Fatalf("second external sign-in:\n%s", out)
	}
	out = mustRun(t, dir, "auth", "whoami")
	if !strings.Contains(out, "external_42") || !strings.Contains(out, "external") {
		t.Fatalf("whoami:\n%s", out)
	}
	if !strings.Contains(out, "Picture:  https://example.com/kim.png") {
		t.Fatalf("whoami without picture:\n%s", out)
	}

	if _, code := runCLI(t, dir, "", "auth", "external", "garbage"); code != 2 {
		t.Fatalf("garbage token: exit %d", code)
	}
}

func TestSQLiteBackend(t *testing.T) {
	dir := isolate(t)
	mustRun(t, dir, "--backend", "sqlite", "auth", "signup", "--username", "ab", "--display-name", "Ab", "--password", "secret1", "--confirm", "secret1")
	mustRun(t, dir, "--backend", "sqlite", "add", "stored", "in", "sqlite")
	out := mustRun(t, dir, "--backend", "sqlite", "ls")
	if !strings.Contains(out, "stored in sqlite") {
		t.Fatalf("ls:\n%s", out)
	}
	// the json store is separate
	out = mustRun(t, dir, "ls")
	if strings.Contains(out, "stored in sqlite") {
		t.Fatalf("json backend sees sqlite data:\n%s", out)
	}
}

func TestAutoDefaultUser(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TODO_AUTO_DEFAULT_USER", "true")
	mustRun(t, dir, "add", "x")
	out := mustRun(t, dir, "auth", "whoami")
	if !strings.Contains(out, "Username: user1") {
		t.Fatalf("whoami:\n%s", out)
	}
}

func TestPresets(t *testing.T) {
	dir := isolate(t)
	out := mustRun(t, dir, "presets")
	for _, want := range []string{"today", "tomorrow", "+7", "month-end", "next-month", "00/15/30/45"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets missing %q:\n%s", want, out)
		}
	}
}
