package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "warn"}, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Fatalf("warn record missing: %s", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Fatalf("expected caller source in output: %s", out)
	}
}

func TestDisabledPackages(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"Logger"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Debugf("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Fatalf("record from disabled package was written: %s", buf.String())
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "canvasedit.log")
	closer, err := Setup(Config{LogLevel: "info", LogFilePath: path})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	Errorf("boom")
	closer.Close()
	Init(NewConfig(), nil)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "boom") {
		t.Fatalf("log file missing record: %s", b)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"err":   slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
