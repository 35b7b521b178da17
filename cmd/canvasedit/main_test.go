package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"canvasedit/internal/config"
	"canvasedit/internal/logger"
)

func TestSetupReportsUnknownConfigKeys(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[editor]\nwidht = 300\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	logPath := filepath.Join(dir, "canvasedit.log")

	flags := config.NewFlags("canvasedit", io.Discard)
	if err := flags.Parse([]string{"-config", cfgPath, "-log-file", logPath, "-width", "320"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	var early bytes.Buffer
	cfg, closer, err := setup(flags, &early)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() {
		closer.Close()
		logger.Init(logger.NewConfig(), nil)
	})

	if !strings.Contains(early.String(), "editor.widht") {
		t.Fatalf("unknown key was not reported: %s", early.String())
	}
	if cfg.Editor.Width != 320 || cfg.Logger.LogFilePath != logPath {
		t.Fatalf("flag overrides not applied: %#v", cfg)
	}

	logger.Infof("after setup")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "after setup") {
		t.Fatalf("configured log file not in use: %s", data)
	}
}
