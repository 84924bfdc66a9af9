package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cjknorm"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunStdin(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var out bytes.Buffer
	in := strings.NewReader("中文,中文\r\nhello  world\n价格是１００元")
	if err := run(context.Background(), in, &out, nil, cjknorm.New(), 2); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	expected := "中文，中文\nhello world\n价格是 100 元\n"
	if out.String() != expected {
		t.Errorf("expected %q, have %q", expected, out.String())
	}
}

func TestRunFiles(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("中文(中文)\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("abc中文\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run(context.Background(), nil, &out, []string{a, b}, cjknorm.New(), 1); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out.String() != "中文（中文）\nabc 中文\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	err := run(context.Background(), nil, &out, []string{filepath.Join(dir, "missing.txt")}, cjknorm.New(), 1)
	if err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestNormalizeLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines := []string{"中文,中文"}
	if err := normalizeLines(ctx, cjknorm.New(), lines, 1); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestOptions(t *testing.T) {
	opts := options{window: 3, maxRounds: 16, language: "en", jobs: 1}
	nz, err := opts.normalizer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out := nz.Normalize("1..."); out != "1..." {
		t.Errorf("expected English normalization, have %q", out)
	}
	opts.language = "fr"
	if _, err = opts.normalizer(); err == nil {
		t.Error("expected error for unsupported language")
	}
	opts.language, opts.jobs = "auto", 0
	if _, err = opts.normalizer(); err == nil {
		t.Error("expected error for zero jobs")
	}
	if err = setupTracing("verbose"); err == nil {
		t.Error("expected error for unknown trace level")
	}
}

func TestCommandLine(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("hello（world）\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--lang", "auto", "--jobs", "2", "--trace", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if out.String() != "hello (world)\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
