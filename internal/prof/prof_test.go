package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPU:   filepath.Join(dir, "cpu.out"),
		Mem:   filepath.Join(dir, "mem.out"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	s, err := Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{cfg.CPU, cfg.Mem, cfg.Trace} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", filepath.Base(p), err)
		}
	}
}

func TestStartFailsCleanly(t *testing.T) {
	dir := t.TempDir()
	_, err := Start(Config{
		CPU:   filepath.Join(dir, "cpu.out"),
		Trace: filepath.Join(dir, "missing", "trace.out"),
	})
	if err == nil {
		t.Fatal("expected error for an unwritable trace path")
	}
	// cpu профиль должен быть остановлен: новый старт не падает
	s, err := Start(Config{CPU: filepath.Join(dir, "cpu2.out")})
	if err != nil {
		t.Fatalf("cpu profiler left running: %v", err)
	}
	_ = s.Stop()
}

func TestEmptyConfig(t *testing.T) {
	s, err := Start(Config{})
	if err != nil || s.Stop() != nil {
		t.Fatalf("empty config must be a no-op, err=%v", err)
	}
}
