package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestWriteEmitsStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warn("stage degraded", map[string]any{"stage": "ai_analysis", "request_id": "abc"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("level = %v", entry["level"])
	}
	if entry["msg"] != "stage degraded" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["stage"] != "ai_analysis" {
		t.Fatalf("stage = %v", entry["stage"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatal("missing ts field")
	}
}
