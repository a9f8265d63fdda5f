package todo

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// AbortSentinel is what git reads back as "nothing to do": a single blank line.
const AbortSentinel = "\n"

type ParseError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: %s: %q", loc, e.Reason, e.Text)
}

// Parse reads one item per instruction line. Blank lines, comments and
// noop markers are skipped.
func Parse(r io.Reader) ([]Item, error) {
	items := make([]Item, 0)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || line == "noop" {
			continue
		}
		keyword, content, ok := strings.Cut(line, " ")
		if !ok {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "missing content"}
		}
		action, known := ParseAction(keyword)
		if !known {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "unknown action " + keyword}
		}
		items = append(items, Item{Action: action, Content: content})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func Serialize(w io.Writer, items []Item) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if _, err := bw.WriteString(it.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func ReadFile(path string) ([]Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	items, err := Parse(bytes.NewReader(b))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return items, nil
}

func WriteFile(path string, items []Item) error {
	var buf bytes.Buffer
	if err := Serialize(&buf, items); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// WriteAbort replaces the todo file with the abort sentinel.
func WriteAbort(path string) error {
	return os.WriteFile(path, []byte(AbortSentinel), 0o644)
}
