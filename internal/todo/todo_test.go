package todo

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleTodo = `pick aaa111 Fix bug
pick bbb222 Add feature
# comment
pick ccc333 Update docs
`

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	items, err := Parse(strings.NewReader(sampleTodo + "\n# Rebase 123..456 onto 123\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Item{
		{Action: ActionPick, Content: "aaa111 Fix bug"},
		{Action: ActionPick, Content: "bbb222 Add feature"},
		{Action: ActionPick, Content: "ccc333 Update docs"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestParseAllActions(t *testing.T) {
	in := "pick a\nreword b\nedit c\nsquash d\nfixup e\nexec make test\ndrop f\nnoop\n"
	items, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != len(Actions) {
		t.Fatalf("expected %d items, got %d", len(Actions), len(items))
	}
	for i, a := range Actions {
		if items[i].Action != a {
			t.Fatalf("item %d: expected %s, got %s", i, a, items[i].Action)
		}
	}
	if items[5].Content != "make test" {
		t.Fatalf("exec content mismatch: %q", items[5].Content)
	}
}

func TestParseEmptyInputYieldsNoItems(t *testing.T) {
	items, err := Parse(strings.NewReader("\n# only comments\n\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestParseRejectsUnknownAction(t *testing.T) {
	_, err := Parse(strings.NewReader("pick aaa ok\nlabel onto\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Fatalf("expected line 2, got %d", pe.Line)
	}
	if !strings.Contains(pe.Error(), "unknown action label") {
		t.Fatalf("unexpected message: %v", pe)
	}
}

func TestParseRejectsMissingContent(t *testing.T) {
	_, err := Parse(strings.NewReader("pick\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	items := []Item{
		{Action: ActionDrop, Content: "aaa111 Fix bug"},
		{Action: ActionSquash, Content: "bbb222 Add  feature"},
		{Action: ActionExec, Content: "go test ./..."},
		{Action: ActionDrop, Content: "aaa111 Fix bug"},
	}
	var buf bytes.Buffer
	if err := Serialize(&buf, items); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") || strings.Contains(buf.String(), "#") {
		t.Fatalf("unexpected serialized form: %q", buf.String())
	}
	out, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(items, out) {
		t.Fatalf("roundtrip mismatch: %#v", out)
	}
}

func TestActionTables(t *testing.T) {
	for _, a := range Actions {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Fatalf("keyword lookup failed for %s", a)
		}
		got, ok = ActionForLetter(a.Letter())
		if !ok || got != a {
			t.Fatalf("letter lookup failed for %s", a)
		}
	}
	if a, ok := ActionForLetter('F'); !ok || a != ActionFixup {
		t.Fatalf("expected case-insensitive letter lookup")
	}
	if _, ok := ActionForLetter('z'); ok {
		t.Fatalf("z should not map to an action")
	}
	if Action(42).Valid() {
		t.Fatalf("out of range action should be invalid")
	}
}

func TestWriteFileAndAbort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "git-rebase-todo")
	if err := os.WriteFile(path, []byte(sampleTodo), 0o644); err != nil {
		t.Fatal(err)
	}
	items, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	items[0].Action = ActionDrop
	if err := WriteFile(path, items); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "drop aaa111 Fix bug\npick bbb222 Add feature\npick ccc333 Update docs\n"
	if string(b) != want {
		t.Fatalf("unexpected file:\n%s", b)
	}

	if err := WriteAbort(path); err != nil {
		t.Fatalf("abort: %v", err)
	}
	b, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "\n" {
		t.Fatalf("expected abort sentinel, got %q", b)
	}
}

func TestReadFileAnnotatesParseErrorPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "git-rebase-todo")
	if err := os.WriteFile(path, []byte("merge -C abc topic\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Path != path || !strings.HasPrefix(pe.Error(), path+":1:") {
		t.Fatalf("expected path in error, got %v", pe)
	}
}

func TestParseAbbreviatedCommands(t *testing.T) {
	items, err := Parse(strings.NewReader("p aaa111 Fix bug\nf bbb222 fixup! Fix bug\nx make test\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Action{ActionPick, ActionFixup, ActionExec}
	for i, it := range items {
		if it.Action != want[i] {
			t.Fatalf("item %d: got %s want %s", i, it.Action, want[i])
		}
	}
	if _, ok := ParseAction("q"); ok {
		t.Fatalf("unknown letter must not parse")
	}
}
