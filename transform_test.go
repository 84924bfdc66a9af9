package cjknorm

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/cjknorm/lang"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/transform"
)

func TestTransformString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	out, n, err := transform.String(NewTransformer(), "中文,中文\r\nhello  world\n\n价格是１００元")
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if out != "中文，中文\nhello world\n\n价格是 100 元" {
		t.Errorf("unexpected output %q", out)
	}
	if n != len("中文,中文\r\nhello  world\n\n价格是１００元") {
		t.Errorf("expected all of the input to be consumed, have %d bytes", n)
	}
}

func TestTransformEmpty(t *testing.T) {
	out, _, err := transform.String(NewTransformer(), "")
	if err != nil || out != "" {
		t.Errorf("expected empty output, have %q, error %v", out, err)
	}
}

func TestTransformHoldsBackIncompleteLine(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 64)
	nDst, nSrc, err := tr.Transform(dst, []byte("abc中文\n中文"), false)
	if err != transform.ErrShortSrc {
		t.Errorf("expected ErrShortSrc, have %v", err)
	}
	if nSrc != len("abc中文\n") {
		t.Errorf("expected first line to be consumed, have %d bytes", nSrc)
	}
	if string(dst[:nDst]) != "abc 中文\n" {
		t.Errorf("unexpected output %q", dst[:nDst])
	}
}

func TestTransformShortDst(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 4)
	nDst, nSrc, err := tr.Transform(dst, []byte("ab\n中文中文\n"), true)
	if err != transform.ErrShortDst {
		t.Errorf("expected ErrShortDst, have %v", err)
	}
	if nDst != 3 || nSrc != 3 {
		t.Errorf("expected first line to be written, have nDst=%d, nSrc=%d", nDst, nSrc)
	}
}

func TestTransformReader(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var in, expected strings.Builder
	for i := 0; i < 500; i++ {
		in.WriteString("中文(中文)\n")
		expected.WriteString("中文（中文）\n")
	}
	nz := New(WithLanguage(lang.Zh))
	r := transform.NewReader(strings.NewReader(in.String()), nz.Transformer())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading failed: %v", err)
	}
	if string(out) != expected.String() {
		t.Errorf("unexpected output of %d bytes, expected %d bytes", len(out), expected.Len())
	}
}

func TestTransformReaderLineTooLong(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// lines must fit into the 4096 byte source buffer of transform.Reader
	long := strings.Repeat("中文", 2000)
	r := transform.NewReader(strings.NewReader(long+"\n"), NewTransformer())
	_, err := io.ReadAll(r)
	if !errors.Is(err, transform.ErrShortSrc) {
		t.Errorf("expected ErrShortSrc for overlong line, have %v", err)
	}
	out, _, err := transform.String(NewTransformer(), long+"\n")
	if err != nil || out != long+"\n" {
		t.Errorf("expected transform.String to grow its buffers, error is %v", err)
	}
}
