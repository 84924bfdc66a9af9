/*
Package testdata provides access to test case files of normalization tests.

A test case file holds one test case per line: a Go-quoted input string,
followed by a Go-quoted expected output, optionally followed by a comment
starting with '#'. Lines starting with '#' and empty lines are skipped.

	"中文,中文"	"中文，中文"	# comma between Chinese letters
*/
package testdata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

// Path returns the path for the given test case file.
func Path(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), file)
}

// CaseFile is a scanner for test case files.
type CaseFile struct {
	in       io.Closer
	scanner  *bufio.Scanner
	lineno   int
	input    string
	expected string
	comment  string
	err      error
}

// OpenCaseFile opens a test case file located in this package's directory.
// If the file cannot be opened, t (if given) is flagged as failing and nil
// is returned.
func OpenCaseFile(filename string, t *testing.T) *CaseFile {
	f, err := os.Open(Path(filename))
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading %s: %v", filename, err)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading %s: %v\n", filename, err)
		}
		return nil
	}
	return NewCaseFile(f)
}

// NewCaseFile creates a scanner for test cases read from r. If r is an
// io.Closer, Close will close it.
func NewCaseFile(r io.Reader) *CaseFile {
	cf := &CaseFile{scanner: bufio.NewScanner(r)}
	if c, ok := r.(io.Closer); ok {
		cf.in = c
	}
	return cf
}

// Scan advances to the next test case. It returns false at the end of the
// input or on a malformed line; Err tells the two apart.
func (cf *CaseFile) Scan() bool {
	for cf.scanner.Scan() {
		cf.lineno++
		text := strings.TrimSpace(cf.scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		cf.input, cf.expected, cf.comment, cf.err = parseCase(text)
		if cf.err != nil {
			cf.err = fmt.Errorf("line %d: %w", cf.lineno, cf.err)
			return false
		}
		return true
	}
	return false
}

func parseCase(text string) (in, out, comment string, err error) {
	qin, err := strconv.QuotedPrefix(text)
	if err != nil {
		return "", "", "", fmt.Errorf("malformed input field: %w", err)
	}
	rest := strings.TrimSpace(text[len(qin):])
	qout, err := strconv.QuotedPrefix(rest)
	if err != nil {
		return "", "", "", fmt.Errorf("malformed expected field: %w", err)
	}
	rest = strings.TrimSpace(rest[len(qout):])
	if rest != "" && rest[0] != '#' {
		return "", "", "", fmt.Errorf("unexpected trailing text %q", rest)
	}
	comment = strings.TrimSpace(strings.TrimPrefix(rest, "#"))
	in, _ = strconv.Unquote(qin)
	out, _ = strconv.Unquote(qout)
	return in, out, comment, nil
}

// Input is the input string of the current test case.
func (cf *CaseFile) Input() string {
	return cf.input
}

// Expected is the expected output of the current test case.
func (cf *CaseFile) Expected() string {
	return cf.expected
}

// Comment is the comment of the current test case, if any.
func (cf *CaseFile) Comment() string {
	return cf.comment
}

// Line is the line number of the current test case.
func (cf *CaseFile) Line() int {
	return cf.lineno
}

// Err returns the first error encountered.
func (cf *CaseFile) Err() error {
	if cf.err != nil {
		return cf.err
	}
	return cf.scanner.Err()
}

// Close closes the underlying file.
func (cf *CaseFile) Close() {
	if cf.in != nil {
		cf.in.Close()
	}
}
