package tween

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.DefaultEaseType != EaseLinear || s.DefaultLoopType != LoopRestartFromBeginning ||
		s.DefaultUpdateType != Update || s.DuplicatePropertyRule != DuplicateNone {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if !s.ValidateTargetsEachTick || s.TimeScale != 1 || s.LogLevel != LogWarn {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestParseSettings(t *testing.T) {
	data := []byte(`
defaultEaseType: quadOut
defaultLoopType: pingPong
defaultUpdateType: lateUpdate
duplicatePropertyRule: removeRunningProperty
logLevel: error
presets:
  pop:
    ease: "curve:OutBack"
    iterations: 3
    delay: 0.25
    update: fixedUpdate
`)
	s, err := ParseSettings(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.DefaultEaseType != EaseQuadOut || s.DefaultLoopType != LoopPingPong ||
		s.DefaultUpdateType != LateUpdate || s.DuplicatePropertyRule != DuplicateRemoveRunningProperty ||
		s.LogLevel != LogError {
		t.Errorf("parsed = %+v", s)
	}
	if !s.ValidateTargetsEachTick || s.TimeScale != 1 {
		t.Error("omitted keys should keep their defaults")
	}

	p, ok := s.Presets["pop"]
	if !ok {
		t.Fatal("preset pop missing")
	}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	e := newTestEngine()
	tw := e.NewTween(NewNode("n"), 1, cfg.Float("x", 1, false))
	if tw.UpdateType() != FixedUpdate || tw.TotalDuration() != 3 {
		t.Errorf("preset not applied: update %v total %v", tw.UpdateType(), tw.TotalDuration())
	}
}

func TestParseSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown ease", "defaultEaseType: wobbly\n"},
		{"unknown rule", "duplicatePropertyRule: sometimes\n"},
		{"negative time scale", "timeScale: -1\n"},
		{"bad preset ease", "presets:\n  a:\n    ease: nope\n"},
		{"bad preset iterations", "presets:\n  a:\n    iterations: -4\n"},
		{"not yaml", "defaultEaseType: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSettings([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
	_, err := ParseSettings([]byte("logLevel: loud\n"))
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("err = %v, want ErrInvalidSettings", err)
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tween.yaml")
	if err := os.WriteFile(path, []byte("timeScale: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.TimeScale != 0.5 {
		t.Errorf("TimeScale = %v, want 0.5", s.TimeScale)
	}

	_, err = LoadSettings(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestSettingsMarshal(t *testing.T) {
	s := DefaultSettings()
	s.DefaultEaseType = EaseBackOut
	data, err := s.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseSettings(data)
	if err != nil {
		t.Fatal(err)
	}
	if back.DefaultEaseType != EaseBackOut || back.LogLevel != s.LogLevel {
		t.Errorf("round trip = %+v", back)
	}
}

func TestSettingsWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tween.yaml")
	if err := os.WriteFile(path, []byte("timeScale: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, ok := w.Poll(); ok {
		t.Fatal("Poll reported settings before any change")
	}
	if err := os.WriteFile(path, []byte("timeScale: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s, ok := w.Poll(); ok {
			if s.TimeScale != 2 {
				t.Errorf("TimeScale = %v, want 2", s.TimeScale)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("watcher did not deliver reloaded settings")
}

func TestSettingsWatcherReportsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tween.yaml")
	if err := os.WriteFile(path, []byte("timeScale: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("timeScale: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-w.Errors:
		if !errors.Is(err, ErrInvalidSettings) {
			t.Errorf("err = %v, want ErrInvalidSettings", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error delivered")
	}
}

func TestSettingsWatcherCloseTwice(t *testing.T) {
	w, err := WatchSettings(filepath.Join(t.TempDir(), "tween.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if _, ok := w.Poll(); ok {
		t.Error("Poll after Close should report nothing")
	}
}
