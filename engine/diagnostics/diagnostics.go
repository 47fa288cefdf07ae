// Package diagnostics is the engine's keyed diagnostics store. The frame
// loop reports every frame; the store maintains a smoothed FPS reading under
// KeyFPS and optionally logs frame/memory statistics at an interval.
package diagnostics

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// KeyFPS is the store key holding the smoothed frames-per-second value.
const KeyFPS = "fps"

// fpsSmoothing is the exponential moving average factor applied to
// instantaneous per-frame FPS readings.
const fpsSmoothing = 0.1

// Store tracks keyed diagnostic values and frame statistics. Values are
// written by the frame loop and read by the debug overlay pipeline.
type Store struct {
	mu *sync.RWMutex

	values map[string]float64

	smoothedFPS float64
	frameSeen   bool

	loggingEnabled bool
	logInterval    time.Duration
	frameCount     int
	lastLog        time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
}

// NewStore creates a diagnostics store. Interval logging is disabled until
// EnableLogging is called; the log interval defaults to 1 second.
//
// Returns:
//   - *Store: the newly created store
func NewStore() *Store {
	return &Store{
		mu:          &sync.RWMutex{},
		values:      make(map[string]float64),
		logInterval: time.Second,
		lastLog:     time.Now(),
	}
}

// FrameObserved records one frame of duration dt seconds. Updates the
// smoothed FPS value and, when logging is enabled, emits a stats line once
// per log interval covering FPS, heap usage, and GC activity.
//
// Parameters:
//   - dt: frame duration in seconds
func (s *Store) FrameObserved(dt float32) {
	if dt <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	instant := 1.0 / float64(dt)
	if !s.frameSeen {
		s.smoothedFPS = instant
		s.frameSeen = true
	} else {
		s.smoothedFPS += (instant - s.smoothedFPS) * fpsSmoothing
	}
	s.values[KeyFPS] = s.smoothedFPS

	if !s.loggingEnabled {
		return
	}

	s.frameCount++
	now := time.Now()
	elapsed := now.Sub(s.lastLog)
	if elapsed < s.logInterval {
		return
	}

	fps := float64(s.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&s.memStats)
	allocMB := float64(s.memStats.Alloc) / 1024 / 1024
	sysMB := float64(s.memStats.Sys) / 1024 / 1024

	gcCount := s.memStats.NumGC
	var lastPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		lastPauseUs = s.memStats.PauseNs[(gcCount-1)%256] / 1000
	}

	log.Printf("[Diagnostics] FPS: %.2f | Heap: %.2f MB | GC: %d (last: %d µs) | Sys: %.2f MB",
		fps, allocMB, gcCount-s.lastGCCount, lastPauseUs, sysMB)

	s.frameCount = 0
	s.lastLog = now
	s.lastGCCount = gcCount
}

// Set stores an arbitrary keyed diagnostic value.
//
// Parameters:
//   - key: the diagnostic key
//   - value: the value to publish
func (s *Store) Set(key string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Value returns the diagnostic value stored under key.
//
// Parameters:
//   - key: the diagnostic key
//
// Returns:
//   - float64: the stored value, or 0 if absent
//   - bool: false if the key has never been written
func (s *Store) Value(key string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// EnableLogging enables periodic stats output to the log.
//
// Parameters:
//   - interval: how often to emit a stats line (<= 0 keeps the current interval)
func (s *Store) EnableLogging(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if interval > 0 {
		s.logInterval = interval
	}
	s.loggingEnabled = true
	s.lastLog = time.Now()
	s.frameCount = 0
}

// DisableLogging disables periodic stats output.
func (s *Store) DisableLogging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggingEnabled = false
}
