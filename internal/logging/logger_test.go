package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutput_Production(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "debug", "production")
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s", log.GetLevel())
	}
	log.WithField("domain", "a.example.com").Info("report submitted")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("production output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "report submitted" || entry["domain"] != "a.example.com" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewWithOutput_DevelopmentText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", "development")
	log.Info("hello")
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("development output should be text: %s", buf.String())
	}
}

func TestNewWithOutput_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "chatty", "development")
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %s, want info", log.GetLevel())
	}
	if !strings.Contains(buf.String(), "invalid log level") {
		t.Errorf("missing warning: %s", buf.String())
	}
}
