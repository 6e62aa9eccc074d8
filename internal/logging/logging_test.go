package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewEmitsTaggedJSON(t *testing.T) {
	entry := New("certrun", "info")

	var buf bytes.Buffer
	entry.Logger.SetOutput(&buf)
	entry.Info("server started")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["service"] != "certrun" {
		t.Errorf("service = %v, want certrun", record["service"])
	}
	if record["message"] != "server started" {
		t.Errorf("message = %v, want server started", record["message"])
	}
	if record["level"] != "info" {
		t.Errorf("level = %v, want info", record["level"])
	}
	if ts, ok := record["timestamp"].(string); !ok || ts == "" {
		t.Errorf("timestamp = %v, want non-empty string", record["timestamp"])
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	entry := New("certrun", "error")

	var buf bytes.Buffer
	entry.Logger.SetOutput(&buf)

	entry.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info record emitted at error level: %s", buf.String())
	}

	entry.Error("loud")
	if buf.Len() == 0 {
		t.Fatal("error record not emitted")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
