package debug

import (
	"strings"
	"sync"

	"github.com/kestrelworks/roost/common"
)

// defaultSampleInterval is how often the OS backend is re-queried, in seconds.
const defaultSampleInterval float32 = 0.5

// systemProbe abstracts the OS/process metrics backend so tests can inject
// synthetic readings. The production probe is gopsutil.
type systemProbe interface {
	// GlobalCPUPercent returns total CPU usage across all cores (%).
	GlobalCPUPercent() (float64, error)

	// ProcessCPUPercent returns the current process's raw CPU usage (%),
	// which may exceed 100 on multi-core systems.
	ProcessCPUPercent() (float64, error)

	// ProcessMemoryBytes returns the current process's resident memory.
	ProcessMemoryBytes() (uint64, error)

	// LogicalCores returns the logical core count (at least 1).
	LogicalCores() int

	// CPUBrands returns per-core brand/model strings.
	CPUBrands() []string

	// CPUNames returns per-core plain names, used as a brand fallback.
	CPUNames() []string
}

// samplerImpl is the single implementation of Sampler.
type samplerImpl struct {
	mu *sync.Mutex

	probe    systemProbe
	interval float32
	elapsed  float32

	cpuAllPercent float64
	appCPUPercent float64
	appMemBytes   uint64
}

// Sampler owns the rate-limited OS/process telemetry readings feeding the
// debug overlay. Readings default to zero on any backend failure; sampling
// never returns an error and never blocks the frame loop.
type Sampler interface {
	// Poll advances the sample timer by the frame duration and re-queries
	// the backend when the timer fires. When visible is false no work is
	// performed at all, skipping the underlying syscalls entirely.
	//
	// Parameters:
	//   - dt: frame duration in seconds
	//   - visible: whether the debug overlay is currently shown
	//
	// Returns:
	//   - bool: true if the backend was re-queried this call
	Poll(dt float32, visible bool) bool

	// CPUAllPercent returns the last sampled total CPU usage (%).
	CPUAllPercent() float64

	// AppCPUPercent returns the last sampled process CPU usage, normalized
	// by logical core count and clamped to [0, 100].
	AppCPUPercent() float64

	// AppMemBytes returns the last sampled process resident memory.
	AppMemBytes() uint64

	// ResolveCPUBrand returns a human-readable CPU brand string: the first
	// non-empty trimmed per-core brand, else the first core's plain name,
	// else "Unknown CPU".
	ResolveCPUBrand() string
}

// Compile-time interface compliance check
var _ Sampler = &samplerImpl{}

// NewSampler creates a sampler bound to the current process and takes an
// initial reading, so values are meaningful before the first timer expiry.
//
// Parameters:
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the newly created sampler
func NewSampler(options ...SamplerOption) Sampler {
	s := &samplerImpl{
		mu:       &sync.Mutex{},
		interval: defaultSampleInterval,
	}

	for _, option := range options {
		option(s)
	}

	if s.probe == nil {
		s.probe = newGopsutilProbe()
	}

	s.refresh()
	return s
}

// refresh re-queries the backend and stores normalized readings. Any backend
// error degrades the affected reading to zero. Caller must hold the mutex
// (or own the sampler exclusively, as during construction).
func (s *samplerImpl) refresh() {
	global, err := s.probe.GlobalCPUPercent()
	if err != nil {
		global = 0
	}

	appRaw, err := s.probe.ProcessCPUPercent()
	if err != nil {
		appRaw = 0
	}

	mem, err := s.probe.ProcessMemoryBytes()
	if err != nil {
		mem = 0
	}

	cores := s.probe.LogicalCores()
	if cores < 1 {
		cores = 1
	}

	s.cpuAllPercent = global
	s.appCPUPercent = common.Clamp(appRaw/float64(cores), 0, 100)
	s.appMemBytes = mem
}

func (s *samplerImpl) Poll(dt float32, visible bool) bool {
	if !visible {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.elapsed += dt
	if s.elapsed < s.interval {
		return false
	}
	// Repeating timer: keep the remainder so cadence stays stable.
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
	}

	s.refresh()
	return true
}

func (s *samplerImpl) CPUAllPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cpuAllPercent
}

func (s *samplerImpl) AppCPUPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appCPUPercent
}

func (s *samplerImpl) AppMemBytes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appMemBytes
}

func (s *samplerImpl) ResolveCPUBrand() string {
	for _, brand := range s.probe.CPUBrands() {
		if trimmed := strings.TrimSpace(brand); trimmed != "" {
			return trimmed
		}
	}
	if names := s.probe.CPUNames(); len(names) > 0 {
		if trimmed := strings.TrimSpace(names[0]); trimmed != "" {
			return trimmed
		}
	}
	return "Unknown CPU"
}
