package diagnostics

import (
	"math"
	"testing"
)

func TestValueUnsetKey(t *testing.T) {
	s := NewStore()
	if v, ok := s.Value(KeyFPS); ok || v != 0 {
		t.Errorf("unset key returned (%v, %v), want (0, false)", v, ok)
	}
}

func TestSetAndValue(t *testing.T) {
	s := NewStore()
	s.Set("draw_calls", 42)
	if v, ok := s.Value("draw_calls"); !ok || v != 42 {
		t.Errorf("got (%v, %v), want (42, true)", v, ok)
	}
}

func TestFrameObservedSeedsFPS(t *testing.T) {
	s := NewStore()
	// 16.666ms frame = 60 FPS; the first observation seeds the average directly.
	s.FrameObserved(1.0 / 60.0)

	fps, ok := s.Value(KeyFPS)
	if !ok {
		t.Fatal("FPS not published after first frame")
	}
	if math.Abs(fps-60.0) > 0.01 {
		t.Errorf("fps = %v, want ~60", fps)
	}
}

func TestFrameObservedSmoothsTowardNewRate(t *testing.T) {
	s := NewStore()
	s.FrameObserved(1.0 / 60.0)
	s.FrameObserved(1.0 / 30.0)

	fps, _ := s.Value(KeyFPS)
	if fps >= 60.0 || fps <= 30.0 {
		t.Errorf("fps = %v, want between 30 and 60 after one slow frame", fps)
	}
	// EMA with factor 0.1: 60 + (30-60)*0.1 = 57.
	if math.Abs(fps-57.0) > 0.01 {
		t.Errorf("fps = %v, want ~57", fps)
	}
}

func TestFrameObservedIgnoresNonPositiveDT(t *testing.T) {
	s := NewStore()
	s.FrameObserved(0)
	s.FrameObserved(-0.5)
	if _, ok := s.Value(KeyFPS); ok {
		t.Error("non-positive frame times must not publish an FPS value")
	}
}
