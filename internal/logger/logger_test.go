package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}

	realTmpDir, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("resolve tmp dir symlink failed: %v", err)
	}
	realGot, err := filepath.EvalSymlinks(filepath.Dir(got))
	if err != nil {
		t.Fatalf("resolve got dir symlink failed: %v", err)
	}
	if realGot != filepath.Join(realTmpDir, defaultLogDirName) {
		t.Fatalf("unexpected log dir: got=%s", realGot)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("unexpected log filename: %s", filepath.Base(got))
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("expected log dir to be created: %v", err)
	}
}

func TestNewReleaseWritesToConfiguredFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{
		Dir:      tmpDir,
		Filename: "storelink.log",
	})
	log.Info("order-status-updated")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "storelink.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if !strings.Contains(string(content), "order-status-updated") {
		t.Fatalf("log file should contain the message, got=%s", string(content))
	}
}

func TestNewDebugDoesNotWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{
		Dir:      tmpDir,
		Filename: "storelink.log",
	})
	log.Info("debug-mode-console-only")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "storelink.log")); !os.IsNotExist(err) {
		t.Fatal("debug mode should not create a log file")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	cases := []struct {
		value    int
		fallback int
		want     int
	}{
		{value: 0, fallback: 7, want: 7},
		{value: -3, fallback: 7, want: 7},
		{value: 12, fallback: 7, want: 12},
	}
	for _, tc := range cases {
		if got := normalizePositiveInt(tc.value, tc.fallback); got != tc.want {
			t.Fatalf("normalizePositiveInt(%d, %d) = %d, want %d", tc.value, tc.fallback, got, tc.want)
		}
	}
}
