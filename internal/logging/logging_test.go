package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "breathe.log")

	logger, closer, err := New(Options{Path: path})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("session started", slog.Int("rounds", 3))
	logger.Debug("hidden")

	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := bytes.Split(bytes.TrimSpace(b), []byte("\n"))
	assert.Len(t, lines, 1)

	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "session started", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.InDelta(t, 3, entry["rounds"], 0)
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(newHandler(&buf, true))
	logger.Debug("tick", slog.Int("elapsed", 2))

	assert.Contains(t, buf.String(), `"msg":"tick"`)
	assert.Contains(t, buf.String(), `"source"`)
}

func TestEmptyPathDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}

	logger.Error("nowhere")
	assert.NoError(t, closer.Close())
}
