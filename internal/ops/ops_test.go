package ops

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"repobak/internal/gh"
	"repobak/internal/git"
	"repobak/internal/model"
	"repobak/internal/ui"
)

// fakeRunner matches commands by key prefix, where the key is the command
// name followed by its joined arguments. Unmatched commands succeed with
// empty output, so each test only lists what it cares about.
type fakeRunner struct {
	responses map[string]string
	fails     map[string]string
	calls     []string
}

func (f *fakeRunner) Run(dir, name string, args ...string) (string, error) {
	key := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, key)
	for prefix, stderr := range f.fails {
		if strings.HasPrefix(key, prefix) {
			return "", fmt.Errorf("%s: %s", prefix, stderr)
		}
	}
	for prefix, out := range f.responses {
		if strings.HasPrefix(key, prefix) {
			return out, nil
		}
	}
	return "", nil
}

func (f *fakeRunner) RunInteractive(dir, name string, args ...string) error {
	_, err := f.Run(dir, name, args...)
	return err
}

func (f *fakeRunner) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (f *fakeRunner) countCalled(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func newTestApp(run *fakeRunner, prompt ui.Prompter) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := &App{
		Dir: "/repo",
		Config: &model.Config{
			ProjectName:       "proj",
			GithubUsername:    "alice",
			BackupBranch:      "main",
			MaxBackupAttempts: 10,
		},
		Git:    git.New("/repo", run),
		Hub:    gh.New("/repo", run),
		Prompt: prompt,
		Out:    ui.NewPrinterWithOutput(&out, &out, false),
	}
	return app, &out
}

func TestCommitDeclinedEmptyCommit(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git branch --show-current":                  "main",
		"git status --porcelain":                     "",
		"git rev-parse HEAD":                         "local111",
		"git remote get-url origin":                  "https://github.com/alice/proj.git",
		"git rev-parse --verify --quiet origin/main": "remote222",
		"git merge-base HEAD origin/main":            "remote222",
	}}
	prompt := &ui.ScriptedPrompter{Confirms: []bool{false}}
	app, out := newTestApp(run, prompt)

	if err := app.Commit(""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if run.called("git commit") {
		t.Error("declining the empty commit must not create a commit")
	}
	if run.called("git push") {
		t.Error("declining the empty commit must not push")
	}
	if !strings.Contains(out.String(), "Sync:") {
		t.Errorf("sync status not reported:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "ahead") {
		t.Errorf("expected ahead state in report:\n%s", out.String())
	}
}

func TestCommitWithChangesPushes(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git branch --show-current":                  "main",
		"git status --porcelain":                     " M main.go",
		"git rev-parse HEAD":                         "local111",
		"git remote get-url origin":                  "https://github.com/alice/proj.git",
		"git rev-parse --verify --quiet origin/main": "local111",
		"git merge-base HEAD origin/main":            "local111",
	}}
	app, _ := newTestApp(run, &ui.ScriptedPrompter{})

	if err := app.Commit("checkpoint before refactor"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if !run.called("git add -A") {
		t.Error("changes were not staged")
	}
	if !run.called("git commit -m checkpoint before refactor") {
		t.Errorf("commit not created with the given message, calls: %v", run.calls)
	}
	if !run.called("git push origin main") {
		t.Error("branch not pushed")
	}
}

func TestQuickBackupCleanTreeOnlyReports(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git branch --show-current":                  "main",
		"git status --porcelain":                     "",
		"git rev-parse HEAD":                         "aaa",
		"git remote get-url origin":                  "https://github.com/alice/proj.git",
		"git rev-parse --verify --quiet origin/main": "aaa",
		"git merge-base HEAD origin/main":            "aaa",
	}}
	app, out := newTestApp(run, &ui.ScriptedPrompter{})

	if err := app.QuickBackup(); err != nil {
		t.Fatalf("QuickBackup failed: %v", err)
	}
	if run.called("git commit") || run.called("git push") {
		t.Error("clean tree must not commit or push")
	}
	if !strings.Contains(out.String(), "up to date") {
		t.Errorf("expected up-to-date report:\n%s", out.String())
	}
}

func TestCleanHistoryNoUserCommitsRewritesOrphan(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git branch --show-current": "main",
		"git log --pretty=format:":  "h1|Bob|bob@example.com|their work\nh2|Carol|carol@example.com|more work",
	}}
	// Confirm the rewrite, decline the force push.
	prompt := &ui.ScriptedPrompter{Confirms: []bool{true, false}}
	app, _ := newTestApp(run, prompt)

	if err := app.CleanHistory(); err != nil {
		t.Fatalf("CleanHistory failed: %v", err)
	}

	if !run.called("git checkout --orphan repobak-rewrite-") {
		t.Errorf("orphan branch not created, calls: %v", run.calls)
	}
	if got := run.countCalled("git commit"); got != 1 {
		t.Errorf("expected exactly one commit, got %d", got)
	}
	found := false
	for _, c := range run.calls {
		if strings.Contains(c, "--author alice <alice@users.noreply.github.com>") {
			found = true
		}
	}
	if !found {
		t.Errorf("fresh commit not authored as the configured user, calls: %v", run.calls)
	}
	if !run.called("git branch -M main") {
		t.Error("orphan branch did not replace the original branch")
	}
	if run.called("git push --force") {
		t.Error("declined force push must not push")
	}
}

func TestCleanHistoryResetsToEarliestUserCommit(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git branch --show-current": "main",
		"git log --pretty=format:": "h1|Bob|bob@example.com|later foreign work\n" +
			"h2|alice|alice@users.noreply.github.com|my newest\n" +
			"h3|alice|alice@users.noreply.github.com|my earliest\n" +
			"h4|Carol|carol@example.com|ancient foreign work",
	}}
	prompt := &ui.ScriptedPrompter{Confirms: []bool{true, true}}
	app, _ := newTestApp(run, prompt)

	if err := app.CleanHistory(); err != nil {
		t.Fatalf("CleanHistory failed: %v", err)
	}

	if !run.called("git reset --hard h3") {
		t.Errorf("expected reset to earliest own commit h3, calls: %v", run.calls)
	}
	if !run.called("git push --force origin main") {
		t.Error("confirmed force push did not happen")
	}
}

func TestCleanHistoryAborts(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git branch --show-current": "main",
		"git log --pretty=format:":  "h1|alice|a@x|mine",
	}}
	prompt := &ui.ScriptedPrompter{Confirms: []bool{false}}
	app, _ := newTestApp(run, prompt)

	if err := app.CleanHistory(); err != ErrAborted {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if run.called("git reset") || run.called("git checkout --orphan") {
		t.Error("abort must leave history untouched")
	}
}

func TestNewBranchBackupRecoversOnPushFailure(t *testing.T) {
	run := &fakeRunner{
		responses: map[string]string{
			"git branch --show-current": "main",
			"git status --porcelain":    " M main.go",
		},
		fails: map[string]string{
			"git push -u origin": "remote rejected",
		},
	}
	prompt := &ui.ScriptedPrompter{Inputs: []string{""}}
	app, _ := newTestApp(run, prompt)

	err := app.NewBranchBackup()
	if err == nil {
		t.Fatal("expected push error")
	}

	if !run.called("git checkout main") {
		t.Errorf("previous branch not restored, calls: %v", run.calls)
	}
	if !run.called("git branch -D backup-") {
		t.Errorf("new branch not deleted, calls: %v", run.calls)
	}
}

func TestDeleteRepoRequiresTypedName(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git remote get-url origin": "https://github.com/alice/proj.git",
	}}
	prompt := &ui.ScriptedPrompter{Confirms: []bool{true}, Inputs: []string{"wrong-name"}}
	app, _ := newTestApp(run, prompt)

	if err := app.DeleteRepo(); err != ErrAborted {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if run.called("gh repo delete") {
		t.Error("repository must not be deleted on a mismatched confirmation")
	}
}

func TestDeleteRepo(t *testing.T) {
	run := &fakeRunner{responses: map[string]string{
		"git remote get-url origin": "https://github.com/alice/proj.git",
	}}
	prompt := &ui.ScriptedPrompter{Confirms: []bool{true}, Inputs: []string{"proj"}}
	app, _ := newTestApp(run, prompt)

	if err := app.DeleteRepo(); err != nil {
		t.Fatalf("DeleteRepo failed: %v", err)
	}
	if !run.called("gh repo delete alice/proj --yes") {
		t.Errorf("gh repo delete not invoked, calls: %v", run.calls)
	}
	if !run.called("git remote remove origin") {
		t.Error("origin remote not removed")
	}
}
