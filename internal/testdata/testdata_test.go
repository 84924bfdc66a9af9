package testdata

import (
	"strings"
	"testing"
)

func TestParseCases(t *testing.T) {
	input := strings.NewReader(`# header comment

"中文,中文"	"中文，中文"	# comma
"a\tb"  "a b"
`)
	cf := NewCaseFile(input)
	if !cf.Scan() {
		t.Fatalf("expected first test case, error is %v", cf.Err())
	}
	if cf.Input() != "中文,中文" || cf.Expected() != "中文，中文" {
		t.Errorf("unexpected test case %q => %q", cf.Input(), cf.Expected())
	}
	if cf.Comment() != "comma" {
		t.Errorf("expected comment to be 'comma', is %q", cf.Comment())
	}
	if cf.Line() != 3 {
		t.Errorf("expected test case to be in line 3, is %d", cf.Line())
	}
	if !cf.Scan() || cf.Input() != "a\tb" || cf.Comment() != "" {
		t.Errorf("expected escaped second test case without comment, is %q # %q", cf.Input(), cf.Comment())
	}
	if cf.Scan() {
		t.Error("expected end of input")
	}
	if cf.Err() != nil {
		t.Errorf("unexpected error %v", cf.Err())
	}
}

func TestMalformedCase(t *testing.T) {
	cf := NewCaseFile(strings.NewReader(`"only input"`))
	if cf.Scan() {
		t.Fatal("expected malformed test case to stop scanning")
	}
	if cf.Err() == nil {
		t.Error("expected error for malformed test case")
	}
	cf = NewCaseFile(strings.NewReader(`"a" "b" trailing`))
	if cf.Scan() || cf.Err() == nil {
		t.Error("expected error for trailing text")
	}
}

func TestOpenCaseFile(t *testing.T) {
	cf := OpenCaseFile("NormalizeTest.txt", t)
	if cf == nil {
		t.Fatal("cannot open NormalizeTest.txt")
	}
	defer cf.Close()
	n := 0
	for cf.Scan() {
		n++
	}
	if cf.Err() != nil {
		t.Errorf("reading test cases: %v", cf.Err())
	}
	if n == 0 {
		t.Error("expected NormalizeTest.txt to contain test cases")
	}
}
