package regress

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Separator delimits blocks in the check log.
var Separator = strings.Repeat("*", 75)

// Log is the checker's structured on-disk log. It is opened once per run
// and appended to sequentially; a clean run ends with a literal "None"
// line so an empty log cannot be mistaken for a clean one.
type Log struct {
	f *os.File
	w *bufio.Writer
}

// OpenLog creates (truncating) the check log at path
func OpenLog(path string) (*Log, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open check log %s: %w", path, err)
	}
	return &Log{f: f, w: bufio.NewWriter(f)}, nil
}

// ErrorBlock writes a delimited error block:
//
//	>>>>  ERROR: <msg>
//	    <detail>
//	***...***
func (l *Log) ErrorBlock(msg, detail string) {
	fmt.Fprintf(l.w, ">>>>  ERROR: %s\n    %s\n", msg, detail)
	fmt.Fprintln(l.w, Separator)
}

// FailureBlock writes the failure line for one sub-test, quoting the
// original mapping line verbatim
func (l *Log) FailureBlock(mappingLine string) {
	fmt.Fprintf(l.w, ">>>>  Test Failed: %s\n", mappingLine)
}

// FailureOutput appends the full result file text after a failure line
// (verbose mode only), closed by the separator
func (l *Log) FailureOutput(text string) {
	fmt.Fprint(l.w, text)
	fmt.Fprintln(l.w)
	fmt.Fprintln(l.w, Separator)
}

// None writes the explicit clean-run marker
func (l *Log) None() {
	fmt.Fprintln(l.w, "None")
}

// Close flushes and closes the log file
func (l *Log) Close() error {
	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return err
	}
	return l.f.Close()
}
