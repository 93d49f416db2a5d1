package msg

import (
	"os"
	"path/filepath"
	"testing"
)

const testMessages = `
greeting:
  hello: "Hello, {0}!"
  pair: "{0} meets {1}"
todo:
  error:
    not-found: "Todo not found."
`

func loadTestMessages(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte(testMessages), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}
	Init(path)
}

func TestGetMessage(t *testing.T) {
	loadTestMessages(t)

	if got := GetMessage("todo.error.not-found"); got != "Todo not found." {
		t.Errorf("GetMessage = %q", got)
	}
	if got := GetMessage("greeting.hello", "Alice"); got != "Hello, Alice!" {
		t.Errorf("GetMessage with placeholder = %q", got)
	}
	if got := GetMessage("greeting.pair", "Alice", 2); got != "Alice meets 2" {
		t.Errorf("GetMessage with two placeholders = %q", got)
	}
}

func TestGetMessageUnknownKeyFallsBackToKey(t *testing.T) {
	loadTestMessages(t)

	if got := GetMessage("no.such.key"); got != "no.such.key" {
		t.Errorf("GetMessage = %q, want the key itself", got)
	}
}
