package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRunner struct {
	out  []byte
	err  error
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.args = append([]string{name}, args...)
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func fakeGitOnPath(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "git"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

func TestCheckReportsVersion(t *testing.T) {
	fakeGitOnPath(t)
	r := &fakeRunner{out: []byte("git version 2.45.1\n")}
	got, err := Check(context.Background(), r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "git version 2.45.1" {
		t.Fatalf("unexpected version line %q", got)
	}
	if strings.Join(r.args, " ") != "git --version" {
		t.Fatalf("unexpected command %v", r.args)
	}
}

func TestCheckMissingGit(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := Check(context.Background(), &fakeRunner{}); err == nil {
		t.Fatalf("expected missing dependency error")
	}
}

func TestCheckRunnerError(t *testing.T) {
	fakeGitOnPath(t)
	_, err := Check(context.Background(), &fakeRunner{err: errors.New("boom")})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped runner error, got %v", err)
	}
}
