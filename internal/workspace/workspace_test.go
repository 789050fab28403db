package workspace

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tassiovirginio/try-rs/internal/system"
)

// requireGit skips the test if git is not available
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH, skipping test")
	}
}

func setupGitRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)
	tmpDir := t.TempDir()

	cmd := exec.Command("git", "init", tmpDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to init git repo: %s: %v", output, err)
	}

	exec.Command("git", "-C", tmpDir, "config", "user.email", "test@test.com").Run()
	exec.Command("git", "-C", tmpDir, "config", "user.name", "Test User").Run()

	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# Test\n"), 0644); err != nil {
		t.Fatal(err)
	}
	exec.Command("git", "-C", tmpDir, "add", ".").Run()
	cmd = exec.Command("git", "-C", tmpDir, "commit", "-m", "Initial commit")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to create initial commit: %s: %v", output, err)
	}

	return tmpDir
}

func writeDotGit(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".git"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsWorktree(t *testing.T) {
	root := t.TempDir()

	plain := filepath.Join(root, "plain")
	os.MkdirAll(plain, 0755)

	repo := filepath.Join(root, "repo")
	os.MkdirAll(filepath.Join(repo, ".git"), 0755)

	wt := filepath.Join(root, "wt")
	writeDotGit(t, wt, "gitdir: /somewhere/.git/worktrees/wt\n")

	tests := []struct {
		dir          string
		wantRepo     bool
		wantWorktree bool
	}{
		{plain, false, false},
		{repo, true, false},
		{wt, true, true},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.dir), func(t *testing.T) {
			if got := IsRepo(tt.dir); got != tt.wantRepo {
				t.Errorf("IsRepo = %v, want %v", got, tt.wantRepo)
			}
			if got := IsWorktree(tt.dir); got != tt.wantWorktree {
				t.Errorf("IsWorktree = %v, want %v", got, tt.wantWorktree)
			}
		})
	}
}

func TestIsWorktreeLocked(t *testing.T) {
	root := t.TempDir()
	admin := filepath.Join(root, "main", ".git", "worktrees", "wt")
	if err := os.MkdirAll(admin, 0755); err != nil {
		t.Fatal(err)
	}

	wt := filepath.Join(root, "wt")
	writeDotGit(t, wt, "gitdir: "+admin+"\n")

	if IsWorktreeLocked(wt) {
		t.Error("worktree should not be locked yet")
	}

	if err := os.WriteFile(filepath.Join(admin, "locked"), []byte("on usb drive"), 0644); err != nil {
		t.Fatal(err)
	}
	if !IsWorktreeLocked(wt) {
		t.Error("worktree should be locked")
	}
}

func TestGitDir_Relative(t *testing.T) {
	root := t.TempDir()
	wt := filepath.Join(root, "wt")
	writeDotGit(t, wt, "gitdir: ../main/.git/worktrees/wt\n")

	got, ok := GitDir(wt)
	if !ok {
		t.Fatal("GitDir should parse relative gitdir")
	}
	want := filepath.Join(root, "main", ".git", "worktrees", "wt")
	if got != want {
		t.Errorf("GitDir = %q, want %q", got, want)
	}
}

func TestGitDir_Malformed(t *testing.T) {
	wt := filepath.Join(t.TempDir(), "wt")
	writeDotGit(t, wt, "garbage-without-space")

	if _, ok := GitDir(wt); ok {
		t.Error("GitDir should reject a line without a space")
	}
	if IsWorktreeLocked(wt) {
		t.Error("malformed .git should not count as locked")
	}
}

func TestIsGitURL(t *testing.T) {
	tests := map[string]bool{
		"https://github.com/tassiovirginio/try-rs": true,
		"http://example.com/repo":                  true,
		"git@github.com:owner/repo.git":            true,
		"ssh://git@host/repo":                      true,
		"some/local/thing.git":                     true,
		"my-experiment":                            false,
		"2024-01-01 alpha":                         false,
	}
	for in, want := range tests {
		if got := IsGitURL(in); got != want {
			t.Errorf("IsGitURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRepoName(t *testing.T) {
	tests := map[string]string{
		"https://github.com/tassiovirginio/try-rs":      "try-rs",
		"https://github.com/tassiovirginio/try-rs.git/": "try-rs",
		"git@github.com:owner/repo.git":                 "repo",
		"git@host:repo.git":                             "repo",
		"https://host/":                                 "host",
		"/":                                             "cloned-repo",
	}
	for in, want := range tests {
		if got := RepoName(in); got != want {
			t.Errorf("RepoName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, ok := range []string{"feature-x", "fix_1.2", "A"} {
		if err := ValidateName(ok); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "-flag", "../escape", "has space", "a/b"} {
		if err := ValidateName(bad); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", bad)
		}
	}
}

func TestRemoveWorktree_Command(t *testing.T) {
	mock := system.NewMockExecutor()
	g := NewGit(mock)

	if err := g.RemoveWorktree(context.Background(), "/tries/wt"); err != nil {
		t.Fatalf("RemoveWorktree: %v", err)
	}

	cmd, ok := mock.LastCommand()
	if !ok {
		t.Fatal("no command recorded")
	}
	want := []string{"-C", "/tries/wt", "worktree", "remove", "."}
	if cmd.Name != "git" || !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("command = %s, want git %v", cmd.Line(), want)
	}
}

func TestAddWorktree_BranchSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("existing branch", func(t *testing.T) {
		mock := system.NewMockExecutor()
		g := NewGit(mock)

		if err := g.AddWorktree(ctx, "/repo", "feat", "/tries/feat"); err != nil {
			t.Fatalf("AddWorktree: %v", err)
		}
		cmd, _ := mock.LastCommand()
		if cmd.Line() != "git -C /repo worktree add /tries/feat feat" {
			t.Errorf("command = %q", cmd.Line())
		}
		if !cmd.Attached {
			t.Error("worktree add should run attached")
		}
	})

	t.Run("new branch", func(t *testing.T) {
		mock := system.NewMockExecutor()
		mock.AddResponse("git -C /repo show-ref", nil, &system.ExitError{Code: 1})
		g := NewGit(mock)

		if err := g.AddWorktree(ctx, "/repo", "feat", "/tries/feat"); err != nil {
			t.Fatalf("AddWorktree: %v", err)
		}
		cmd, _ := mock.LastCommand()
		if cmd.Line() != "git -C /repo worktree add -b feat /tries/feat" {
			t.Errorf("command = %q", cmd.Line())
		}
	})

	t.Run("failure", func(t *testing.T) {
		mock := system.NewMockExecutor()
		mock.AddResponse("git -C /repo worktree add", nil, &system.ExitError{Code: 128})
		g := NewGit(mock)

		if err := g.AddWorktree(ctx, "/repo", "feat", "/tries/feat"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestClone_Args(t *testing.T) {
	mock := system.NewMockExecutor()
	g := NewGit(mock)

	err := g.Clone(context.Background(), "https://h/r.git", "/tries/r", CloneOptions{Shallow: true})
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}

	cmd, _ := mock.LastCommand()
	want := "git clone --depth 1 https://h/r.git /tries/r --recurse-submodules --no-single-branch"
	if cmd.Line() != want {
		t.Errorf("command = %q, want %q", cmd.Line(), want)
	}

	mock.AddResponse("git clone", nil, errors.New("boom"))
	if err := g.Clone(context.Background(), "https://h/r.git", "/tries/r", CloneOptions{}); err == nil {
		t.Error("expected clone error")
	}
}

func TestGit_RealRepository(t *testing.T) {
	repo := setupGitRepo(t)
	ctx := context.Background()
	g := NewGit(nil)

	if !g.IsInsideRepo(ctx, repo) {
		t.Fatal("IsInsideRepo should be true for an initialised repo")
	}
	if g.IsInsideRepo(ctx, t.TempDir()) {
		t.Error("IsInsideRepo should be false for an empty dir")
	}

	wtPath := filepath.Join(t.TempDir(), "feature")
	if err := g.AddWorktree(ctx, repo, "feature", wtPath); err != nil {
		t.Fatalf("AddWorktree: %v", err)
	}
	if !IsWorktree(wtPath) {
		t.Fatal("created path should be a worktree")
	}
	if !g.BranchExists(ctx, repo, "feature") {
		t.Error("branch should exist after worktree add -b")
	}
}
